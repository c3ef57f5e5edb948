package models

// Movie is a title carried by the store. NumberInStock counts the physical
// copies currently on the shelf; it is decremented by checkout and
// incremented by return, never written directly by handlers.
type Movie struct {
	ID              string  `bson:"id" json:"id"`
	Title           string  `bson:"title" json:"title"`
	Genre           Genre   `bson:"genre" json:"genre"` // snapshot, not a live reference
	NumberInStock   int     `bson:"number_in_stock" json:"numberInStock"`
	DailyRentalRate float64 `bson:"daily_rental_rate" json:"dailyRentalRate"`
}
