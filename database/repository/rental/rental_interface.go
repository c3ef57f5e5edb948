package rentalRepo

import (
	"context"
	"errors"
	"time"

	"vidly/models"
)

// Sentinel errors surfaced by the transactional operations. The rental
// service maps them onto its business-error codes.
var (
	// ErrNoStock means the conditional stock decrement matched nothing:
	// the movie had no copies left at write time.
	ErrNoStock = errors.New("movie out of stock")
	// ErrAlreadyReturned means the guarded rental update matched nothing:
	// the rental already carries a return date.
	ErrAlreadyReturned = errors.New("rental already returned")
)

// RentalRepository defines methods for rental data access.
//
// Checkout and return are transactional: the rental write and the movie
// stock adjustment commit together or not at all. The conditional filters
// inside those transactions are the only mutual exclusion in the system:
// two checkouts racing for the last copy resolve at the database, not in
// process.
type RentalRepository interface {
	// GetByID retrieves a rental by its unique ID. Returns nil when no rental matches.
	GetByID(ctx context.Context, id string) (*models.Rental, error)
	// GetAll retrieves all rentals, most recent first.
	GetAll(ctx context.Context) ([]models.Rental, error)
	// FindLatestOpen retrieves the most recently created rental for the
	// customer/movie pair that has not been returned yet. Returns nil
	// when no open rental matches.
	FindLatestOpen(ctx context.Context, customerID, movieID string) (*models.Rental, error)
	// FindLatest retrieves the most recently created rental for the
	// customer/movie pair regardless of state. Returns nil when the pair
	// has never rented.
	FindLatest(ctx context.Context, customerID, movieID string) (*models.Rental, error)
	// CreateWithStockDecrement inserts the rental and decrements the
	// movie's stock in one transaction. Returns ErrNoStock (and persists
	// nothing) when the movie has no copies left.
	CreateWithStockDecrement(ctx context.Context, rental *models.Rental) error
	// CloseWithStockIncrement sets dateReturn and rentalFee on the rental
	// and increments the movie's stock in one transaction. Returns
	// ErrAlreadyReturned (and persists nothing) when the rental was
	// already processed.
	CloseWithStockIncrement(ctx context.Context, rentalID, movieID string, dateReturn time.Time, fee float64) error
}
