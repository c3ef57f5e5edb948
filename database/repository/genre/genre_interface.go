package genreRepo

import (
	"context"

	"vidly/models"
)

// GenreRepository defines methods for genre data access.
type GenreRepository interface {
	// GetByID retrieves a genre by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Genre, error)
	// GetAll retrieves all genres sorted by name.
	GetAll(ctx context.Context) ([]models.Genre, error)
	// Create inserts a new genre record.
	Create(ctx context.Context, genre *models.Genre) error
	// Update modifies an existing genre record.
	Update(ctx context.Context, genre *models.Genre) error
	// Delete removes a genre record by its ID.
	Delete(ctx context.Context, id string) error
}
