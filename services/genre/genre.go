package genre

import (
	"context"
	"errors"

	genreRepo "vidly/database/repository/genre"
	"vidly/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no genre matches the given ID.
var ErrNotFound = errors.New("genre with the given ID was not found")

// GenreService manages the genre master records.
type GenreService interface {
	GetByID(ctx context.Context, id string) (*models.Genre, error)
	GetAll(ctx context.Context) ([]models.Genre, error)
	Create(ctx context.Context, name string) (*models.Genre, error)
	Update(ctx context.Context, id, name string) (*models.Genre, error)
	Delete(ctx context.Context, id string) (*models.Genre, error)
}

// DefaultGenreService is the production implementation.
type DefaultGenreService struct {
	Repo genreRepo.GenreRepository
}

func (s *DefaultGenreService) GetByID(ctx context.Context, id string) (*models.Genre, error) {
	g, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNotFound
	}
	return g, nil
}

func (s *DefaultGenreService) GetAll(ctx context.Context) ([]models.Genre, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultGenreService) Create(ctx context.Context, name string) (*models.Genre, error) {
	g := &models.Genre{
		ID:   uuid.NewString(),
		Name: name,
	}
	if err := s.Repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *DefaultGenreService) Update(ctx context.Context, id, name string) (*models.Genre, error) {
	g, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	g.Name = name
	if err := s.Repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *DefaultGenreService) Delete(ctx context.Context, id string) (*models.Genre, error) {
	g, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return g, nil
}
