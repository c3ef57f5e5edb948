package movieRepo

import (
	"context"

	"vidly/models"
)

// MovieRepository defines methods for movie data access.
//
// NumberInStock is deliberately absent from the write surface here: stock
// is only ever adjusted through the rental repository's checkout and
// return transactions, so a movie update cannot clobber a concurrent
// stock adjustment.
type MovieRepository interface {
	// GetByID retrieves a movie by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Movie, error)
	// GetAll retrieves all movies sorted by title.
	GetAll(ctx context.Context) ([]models.Movie, error)
	// Create inserts a new movie record.
	Create(ctx context.Context, movie *models.Movie) error
	// UpdateDetails modifies title, genre snapshot and daily rate of an
	// existing movie, leaving the stock counter untouched.
	UpdateDetails(ctx context.Context, movie *models.Movie) error
	// Delete removes a movie record by its ID.
	Delete(ctx context.Context, id string) error
}
