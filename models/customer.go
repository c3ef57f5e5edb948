package models

// Customer is a rental-store customer.
type Customer struct {
	ID     string `bson:"id" json:"id"`
	Name   string `bson:"name" json:"name"`
	Phone  string `bson:"phone" json:"phone"`
	IsGold bool   `bson:"is_gold" json:"isGold"`
}
