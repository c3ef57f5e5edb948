package rental

import "time"

// Fee computes the rental fee from the two fixed dates and the daily rate
// frozen in the rental's movie snapshot. Whole elapsed days, floored: a
// same-day return is free. That is the store's pricing policy, not a
// rounding accident.
func Fee(dateRental, dateReturn time.Time, dailyRentalRate float64) float64 {
	days := int(dateReturn.Sub(dateRental).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return float64(days) * dailyRentalRate
}
