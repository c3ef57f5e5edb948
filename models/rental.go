package models

import "time"

// RentalCustomer is the subset of Customer embedded into a Rental at
// checkout time. Later edits to the customer record do not touch it.
type RentalCustomer struct {
	ID     string `bson:"id" json:"id"`
	Name   string `bson:"name" json:"name"`
	Phone  string `bson:"phone" json:"phone"`
	IsGold bool   `bson:"is_gold" json:"isGold"`
}

// RentalMovie is the subset of Movie embedded into a Rental at checkout
// time. DailyRentalRate is frozen here so the fee is computed against the
// rate the customer actually agreed to.
type RentalMovie struct {
	ID              string  `bson:"id" json:"id"`
	Title           string  `bson:"title" json:"title"`
	DailyRentalRate float64 `bson:"daily_rental_rate" json:"dailyRentalRate"`
}

// Rental records one checkout of one movie copy by one customer.
// DateReturn and RentalFee are nil while the rental is open and are set
// together, exactly once, when the copy comes back.
type Rental struct {
	ID         string         `bson:"id" json:"id"`
	Customer   RentalCustomer `bson:"customer" json:"customer"`
	Movie      RentalMovie    `bson:"movie" json:"movie"`
	DateRental time.Time      `bson:"date_rental" json:"dateRental"`
	DateReturn *time.Time     `bson:"date_return,omitempty" json:"dateReturn,omitempty"`
	RentalFee  *float64       `bson:"rental_fee,omitempty" json:"rentalFee,omitempty"`
}

// Returned reports whether the rental has already been processed.
func (r *Rental) Returned() bool {
	return r.DateReturn != nil
}
