package rental

import (
	"context"
	"time"

	customerRepo "vidly/database/repository/customer"
	movieRepo "vidly/database/repository/movie"
	rentalRepo "vidly/database/repository/rental"
	"vidly/models"
)

// RentalService owns the state transitions of a rental: checkout creates
// the document and takes a copy off the shelf, Return closes it, computes
// the fee and puts the copy back. Everything in between is immutable.
type RentalService interface {
	Checkout(ctx context.Context, customerID, movieID string) (*models.Rental, error)
	Return(ctx context.Context, customerID, movieID string) (*models.Rental, error)
	GetByID(ctx context.Context, id string) (*models.Rental, error)
	GetAll(ctx context.Context) ([]models.Rental, error)
}

// Clock abstracts wall-clock time so fee arithmetic is testable with
// fixed dates.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// TaskScheduler schedules follow-up work for open rentals. Nil disables
// scheduling; checkout treats enqueue failures as non-fatal.
type TaskScheduler interface {
	ScheduleOverdueCheck(rentalID string, checkAt time.Time) error
}

// DefaultRentalService is the production implementation.
type DefaultRentalService struct {
	Repo      rentalRepo.RentalRepository
	Customers customerRepo.CustomerRepository
	Movies    movieRepo.MovieRepository
	Scheduler TaskScheduler
	// OverdueAfter is how long a rental may stay open before the overdue
	// check fires.
	OverdueAfter time.Duration
	Clock        Clock
}

func (s *DefaultRentalService) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now()
	}
	return realClock{}.Now()
}
