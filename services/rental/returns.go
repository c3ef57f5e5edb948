package rental

import (
	"context"
	"errors"
	"fmt"

	rentalRepo "vidly/database/repository/rental"
	"vidly/models"
	"vidly/utils"

	"go.uber.org/zap"
)

// Return closes the most recent open rental for the customer/movie pair,
// computes its fee and increments the movie's stock. Re-invoking it on a
// pair whose rentals are all closed yields ALREADY_PROCESSED, never a
// second stock increment: the repository update is guarded on
// dateReturn == null, so a duplicate request (client retry included)
// matches nothing and the transaction aborts.
func (s *DefaultRentalService) Return(ctx context.Context, customerID, movieID string) (*models.Rental, error) {
	rental, err := s.Repo.FindLatestOpen(ctx, customerID, movieID)
	if err != nil {
		return nil, fmt.Errorf("return: %w", err)
	}
	if rental == nil {
		// Distinguish "never rented" from "already processed".
		latest, err := s.Repo.FindLatest(ctx, customerID, movieID)
		if err != nil {
			return nil, fmt.Errorf("return: %w", err)
		}
		if latest == nil {
			return nil, makeErr(ErrNotFound, "rental with the given customer ID and movie ID was not found")
		}
		return nil, makeErr(ErrAlreadyProcessed, "rental already processed")
	}

	dateReturn := s.now().UTC()
	fee := Fee(rental.DateRental, dateReturn, rental.Movie.DailyRentalRate)

	if err := s.Repo.CloseWithStockIncrement(ctx, rental.ID, rental.Movie.ID, dateReturn, fee); err != nil {
		if errors.Is(err, rentalRepo.ErrAlreadyReturned) {
			return nil, makeErr(ErrAlreadyProcessed, "rental already processed")
		}
		return nil, fmt.Errorf("return: %w", err)
	}

	rental.DateReturn = &dateReturn
	rental.RentalFee = &fee

	utils.GetLogger().Info("rental returned",
		zap.String("rentalId", rental.ID),
		zap.Float64("rentalFee", fee),
	)
	return rental, nil
}

// GetByID retrieves a rental by ID.
func (s *DefaultRentalService) GetByID(ctx context.Context, id string) (*models.Rental, error) {
	rental, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental == nil {
		return nil, makeErr(ErrNotFound, "rental with the given ID was not found")
	}
	return rental, nil
}

// GetAll retrieves all rentals, most recent first.
func (s *DefaultRentalService) GetAll(ctx context.Context) ([]models.Rental, error) {
	return s.Repo.GetAll(ctx)
}
