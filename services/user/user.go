package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	userRepo "vidly/database/repository/user"
	"vidly/models"
	"vidly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmailTaken is returned when registering with an email that
	// already has an account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned for a wrong email or password.
	// The two cases share one message so the endpoint does not leak
	// which emails exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotFound is returned when no user matches the given ID.
	ErrNotFound = errors.New("user with the given ID was not found")
)

const tokenDuration = 24 * time.Hour

// AuthResponse carries the signed token plus the public user fields.
type AuthResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"-"`
}

// UserService manages back-office accounts and credential checks.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResponse, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register creates an account with a bcrypt-hashed password and returns a
// signed token so the client is authenticated immediately.
func (s *DefaultUserService) Register(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	token, err := utils.GenerateToken(u.ID, u.IsAdmin, tokenDuration)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	utils.GetLogger().Info("user registered", zap.String("userId", u.ID))
	return &AuthResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		IsAdmin: u.IsAdmin,
		Token:   token,
	}, nil
}

// Authenticate verifies the credentials and returns a signed token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (string, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return "", fmt.Errorf("authentication failed, please try again")
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateToken(u.ID, u.IsAdmin, tokenDuration)
}

// GetByID retrieves a user by ID.
func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}
