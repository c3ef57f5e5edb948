package user

import (
	"context"
	"testing"

	"vidly/models"
	"vidly/utils"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type repoMock struct {
	byIDFn    func(ctx context.Context, id string) (*models.User, error)
	byEmailFn func(ctx context.Context, email string) (*models.User, error)
	createFn  func(ctx context.Context, u *models.User) error
}

func (m *repoMock) GetByID(ctx context.Context, id string) (*models.User, error) {
	if m.byIDFn == nil {
		return nil, nil
	}
	return m.byIDFn(ctx, id)
}

func (m *repoMock) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.byEmailFn == nil {
		return nil, nil
	}
	return m.byEmailFn(ctx, email)
}

func (m *repoMock) Create(ctx context.Context, u *models.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, u)
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestRegister_Success(t *testing.T) {
	var created *models.User
	s := &DefaultUserService{Repo: &repoMock{
		createFn: func(_ context.Context, u *models.User) error {
			created = u
			return nil
		},
	}}

	resp, err := s.Register(context.Background(), "Peter Parker", "peter@example.com", "supersecret1")
	require.NoError(t, err)
	require.NotNil(t, created)
	require.NotEmpty(t, resp.Token)
	require.Equal(t, "peter@example.com", resp.Email)

	// password stored hashed, never plain
	require.NotEqual(t, "supersecret1", created.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("supersecret1")))

	// the issued token carries the new user's identity
	sub, isAdmin, err := utils.ExtractClaimsFromToken(resp.Token)
	require.NoError(t, err)
	require.Equal(t, created.ID, sub)
	require.False(t, isAdmin)
}

func TestRegister_EmailTaken(t *testing.T) {
	s := &DefaultUserService{Repo: &repoMock{
		byEmailFn: func(context.Context, string) (*models.User, error) {
			return &models.User{ID: "u1", Email: "peter@example.com"}, nil
		},
		createFn: func(context.Context, *models.User) error {
			t.Fatal("create must not be called for a taken email")
			return nil
		},
	}}

	_, err := s.Register(context.Background(), "Peter Parker", "peter@example.com", "supersecret1")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate_Success(t *testing.T) {
	s := &DefaultUserService{Repo: &repoMock{
		byEmailFn: func(context.Context, string) (*models.User, error) {
			return &models.User{
				ID:           "u1",
				Email:        "admin@example.com",
				PasswordHash: mustHash(t, "supersecret1"),
				IsAdmin:      true,
			}, nil
		},
	}}

	token, err := s.Authenticate(context.Background(), "admin@example.com", "supersecret1")
	require.NoError(t, err)

	sub, isAdmin, err := utils.ExtractClaimsFromToken(token)
	require.NoError(t, err)
	require.Equal(t, "u1", sub)
	require.True(t, isAdmin)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	s := &DefaultUserService{Repo: &repoMock{
		byEmailFn: func(context.Context, string) (*models.User, error) {
			return &models.User{ID: "u1", PasswordHash: mustHash(t, "supersecret1")}, nil
		},
	}}

	_, err := s.Authenticate(context.Background(), "admin@example.com", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	s := &DefaultUserService{Repo: &repoMock{}}

	_, err := s.Authenticate(context.Background(), "ghost@example.com", "whatever123")
	// same error as a wrong password: the endpoint must not reveal
	// which emails have accounts
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
