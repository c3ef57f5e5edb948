package rental

import (
	"context"
	"errors"
	"fmt"

	rentalRepo "vidly/database/repository/rental"
	"vidly/models"
	"vidly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Checkout creates a rental for the customer/movie pair and decrements the
// movie's stock. The snapshot fields are copied by value here; later edits
// to the customer or movie master records never reach existing rentals.
//
// The up-front stock check is a courtesy fast path. The authoritative
// guard is the conditional decrement inside the repository transaction:
// when two checkouts race for the last copy, exactly one commits and the
// loser's rental insert is rolled back.
func (s *DefaultRentalService) Checkout(ctx context.Context, customerID, movieID string) (*models.Rental, error) {
	customer, err := s.Customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	if customer == nil {
		return nil, makeErr(ErrNotFound, "customer with the given ID was not found")
	}

	movie, err := s.Movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("checkout: %w", err)
	}
	if movie == nil {
		return nil, makeErr(ErrNotFound, "movie with the given ID was not found")
	}
	if movie.NumberInStock == 0 {
		return nil, makeErr(ErrOutOfStock, "movie not in stock")
	}

	rental := &models.Rental{
		ID: uuid.NewString(),
		Customer: models.RentalCustomer{
			ID:     customer.ID,
			Name:   customer.Name,
			Phone:  customer.Phone,
			IsGold: customer.IsGold,
		},
		Movie: models.RentalMovie{
			ID:              movie.ID,
			Title:           movie.Title,
			DailyRentalRate: movie.DailyRentalRate,
		},
		DateRental: s.now().UTC(),
	}

	if err := s.Repo.CreateWithStockDecrement(ctx, rental); err != nil {
		if errors.Is(err, rentalRepo.ErrNoStock) {
			return nil, makeErr(ErrOutOfStock, "movie not in stock")
		}
		return nil, fmt.Errorf("checkout: %w", err)
	}

	if s.Scheduler != nil && s.OverdueAfter > 0 {
		checkAt := rental.DateRental.Add(s.OverdueAfter)
		if err := s.Scheduler.ScheduleOverdueCheck(rental.ID, checkAt); err != nil {
			// The checkout itself is durable; a lost overdue check is
			// only a missing warning.
			utils.GetLogger().Warn("failed to schedule overdue check",
				zap.String("rentalId", rental.ID), zap.Error(err))
		}
	}

	utils.GetLogger().Info("rental checked out",
		zap.String("rentalId", rental.ID),
		zap.String("customerId", customer.ID),
		zap.String("movieId", movie.ID),
	)
	return rental, nil
}
