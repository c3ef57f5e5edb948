package customerRepo

import (
	"context"

	"vidly/models"
)

// CustomerRepository defines methods for customer data access.
type CustomerRepository interface {
	// GetByID retrieves a customer by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	// GetAll retrieves all customers sorted by name.
	GetAll(ctx context.Context) ([]models.Customer, error)
	// Create inserts a new customer record.
	Create(ctx context.Context, customer *models.Customer) error
	// Update modifies an existing customer record.
	Update(ctx context.Context, customer *models.Customer) error
	// Delete removes a customer record by its ID.
	Delete(ctx context.Context, id string) error
}
