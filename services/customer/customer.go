package customer

import (
	"context"
	"errors"

	customerRepo "vidly/database/repository/customer"
	"vidly/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no customer matches the given ID.
var ErrNotFound = errors.New("customer with the given ID was not found")

// CustomerService manages the customer master records.
type CustomerService interface {
	GetByID(ctx context.Context, id string) (*models.Customer, error)
	GetAll(ctx context.Context) ([]models.Customer, error)
	Create(ctx context.Context, name, phone string, isGold bool) (*models.Customer, error)
	Update(ctx context.Context, id, name, phone string, isGold bool) (*models.Customer, error)
	Delete(ctx context.Context, id string) (*models.Customer, error)
}

// DefaultCustomerService is the production implementation.
type DefaultCustomerService struct {
	Repo customerRepo.CustomerRepository
}

func (s *DefaultCustomerService) GetByID(ctx context.Context, id string) (*models.Customer, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *DefaultCustomerService) GetAll(ctx context.Context) ([]models.Customer, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultCustomerService) Create(ctx context.Context, name, phone string, isGold bool) (*models.Customer, error) {
	c := &models.Customer{
		ID:     uuid.NewString(),
		Name:   name,
		Phone:  phone,
		IsGold: isGold,
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *DefaultCustomerService) Update(ctx context.Context, id, name, phone string, isGold bool) (*models.Customer, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = name
	c.Phone = phone
	c.IsGold = isGold
	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *DefaultCustomerService) Delete(ctx context.Context, id string) (*models.Customer, error) {
	c, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return c, nil
}
