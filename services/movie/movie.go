package movie

import (
	"context"
	"errors"
	"strings"

	genreRepo "vidly/database/repository/genre"
	movieRepo "vidly/database/repository/movie"
	"vidly/models"

	"github.com/google/uuid"
)

// Service-level not-found errors; handlers map both to 404.
var (
	ErrNotFound      = errors.New("movie with the given ID was not found")
	ErrGenreNotFound = errors.New("genre with the given ID was not found")
)

// MovieService manages the movie catalog. The API accepts a genreId; the
// service resolves it and embeds the genre by value, so the movie document
// is self-contained.
type MovieService interface {
	GetByID(ctx context.Context, id string) (*models.Movie, error)
	GetAll(ctx context.Context) ([]models.Movie, error)
	Create(ctx context.Context, title, genreID string, numberInStock int, dailyRentalRate float64) (*models.Movie, error)
	Update(ctx context.Context, id, title, genreID string, dailyRentalRate float64) (*models.Movie, error)
	Delete(ctx context.Context, id string) (*models.Movie, error)
}

// DefaultMovieService is the production implementation.
type DefaultMovieService struct {
	Repo   movieRepo.MovieRepository
	Genres genreRepo.GenreRepository
}

func (s *DefaultMovieService) GetByID(ctx context.Context, id string) (*models.Movie, error) {
	m, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return m, nil
}

func (s *DefaultMovieService) GetAll(ctx context.Context) ([]models.Movie, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultMovieService) resolveGenre(ctx context.Context, genreID string) (*models.Genre, error) {
	g, err := s.Genres.GetByID(ctx, genreID)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGenreNotFound
	}
	return g, nil
}

func (s *DefaultMovieService) Create(ctx context.Context, title, genreID string, numberInStock int, dailyRentalRate float64) (*models.Movie, error) {
	g, err := s.resolveGenre(ctx, genreID)
	if err != nil {
		return nil, err
	}

	m := &models.Movie{
		ID:              uuid.NewString(),
		Title:           strings.TrimSpace(title),
		Genre:           *g,
		NumberInStock:   numberInStock,
		DailyRentalRate: dailyRentalRate,
	}
	if err := s.Repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Update rewrites the movie's details. Stock is not part of the payload;
// it only moves through checkout and return.
func (s *DefaultMovieService) Update(ctx context.Context, id, title, genreID string, dailyRentalRate float64) (*models.Movie, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	g, err := s.resolveGenre(ctx, genreID)
	if err != nil {
		return nil, err
	}

	m.Title = strings.TrimSpace(title)
	m.Genre = *g
	m.DailyRentalRate = dailyRentalRate
	if err := s.Repo.UpdateDetails(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *DefaultMovieService) Delete(ctx context.Context, id string) (*models.Movie, error) {
	m, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return m, nil
}
