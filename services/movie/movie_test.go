package movie

import (
	"context"
	"testing"

	"vidly/models"

	"github.com/stretchr/testify/require"
)

type movieRepoMock struct {
	byIDFn   func(ctx context.Context, id string) (*models.Movie, error)
	createFn func(ctx context.Context, m *models.Movie) error
	updateFn func(ctx context.Context, m *models.Movie) error
}

func (m *movieRepoMock) GetByID(ctx context.Context, id string) (*models.Movie, error) {
	if m.byIDFn == nil {
		return nil, nil
	}
	return m.byIDFn(ctx, id)
}
func (m *movieRepoMock) GetAll(context.Context) ([]models.Movie, error) { return nil, nil }
func (m *movieRepoMock) Create(ctx context.Context, mv *models.Movie) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, mv)
}
func (m *movieRepoMock) UpdateDetails(ctx context.Context, mv *models.Movie) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, mv)
}
func (m *movieRepoMock) Delete(context.Context, string) error { return nil }

type genreRepoMock struct {
	byIDFn func(ctx context.Context, id string) (*models.Genre, error)
}

func (m *genreRepoMock) GetByID(ctx context.Context, id string) (*models.Genre, error) {
	return m.byIDFn(ctx, id)
}
func (m *genreRepoMock) GetAll(context.Context) ([]models.Genre, error) { return nil, nil }
func (m *genreRepoMock) Create(context.Context, *models.Genre) error    { return nil }
func (m *genreRepoMock) Update(context.Context, *models.Genre) error    { return nil }
func (m *genreRepoMock) Delete(context.Context, string) error           { return nil }

func actionGenre(_ context.Context, id string) (*models.Genre, error) {
	if id == "g1" {
		return &models.Genre{ID: "g1", Name: "Action"}, nil
	}
	return nil, nil
}

func TestCreate_EmbedsGenreSnapshot(t *testing.T) {
	var created *models.Movie
	s := &DefaultMovieService{
		Repo:   &movieRepoMock{createFn: func(_ context.Context, m *models.Movie) error { created = m; return nil }},
		Genres: &genreRepoMock{byIDFn: actionGenre},
	}

	m, err := s.Create(context.Background(), "  Terminator ", "g1", 5, 2)
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, "Terminator", m.Title, "title is trimmed")
	require.Equal(t, "Action", m.Genre.Name, "genre embedded by value")
	require.Equal(t, 5, m.NumberInStock)
}

func TestCreate_UnknownGenre(t *testing.T) {
	s := &DefaultMovieService{
		Repo: &movieRepoMock{createFn: func(context.Context, *models.Movie) error {
			t.Fatal("create must not be called for an unknown genre")
			return nil
		}},
		Genres: &genreRepoMock{byIDFn: actionGenre},
	}

	_, err := s.Create(context.Background(), "Terminator", "nope", 5, 2)
	require.ErrorIs(t, err, ErrGenreNotFound)
}

func TestUpdate_DoesNotTouchStock(t *testing.T) {
	existing := &models.Movie{
		ID:              "m1",
		Title:           "Terminator",
		Genre:           models.Genre{ID: "g1", Name: "Action"},
		NumberInStock:   7,
		DailyRentalRate: 2,
	}
	var updated *models.Movie
	s := &DefaultMovieService{
		Repo: &movieRepoMock{
			byIDFn:   func(context.Context, string) (*models.Movie, error) { cp := *existing; return &cp, nil },
			updateFn: func(_ context.Context, m *models.Movie) error { updated = m; return nil },
		},
		Genres: &genreRepoMock{byIDFn: actionGenre},
	}

	m, err := s.Update(context.Background(), "m1", "Terminator 2", "g1", 3)
	require.NoError(t, err)
	require.Equal(t, "Terminator 2", updated.Title)
	require.Equal(t, 3.0, updated.DailyRentalRate)
	require.Equal(t, 7, m.NumberInStock, "update leaves the stock counter alone")
}

func TestGetByID_NotFound(t *testing.T) {
	s := &DefaultMovieService{
		Repo:   &movieRepoMock{},
		Genres: &genreRepoMock{byIDFn: actionGenre},
	}

	_, err := s.GetByID(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)
}
