package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avdeyev/order_crm/internal/models"
	"github.com/avdeyev/order_crm/internal/repo"
	"github.com/avdeyev/order_crm/internal/transport"
)

// CustomerService is plain single-table CRUD; the order aggregate only ever
// reaches customers through the relation resolver.
type CustomerService struct {
	Store *repo.Store
}

func NewCustomerService(store *repo.Store) *CustomerService {
	return &CustomerService{Store: store}
}

func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	return s.Store.Customers(ctx)
}

func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	customer, err := s.Store.CustomerByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer %s", ErrNotFound, id)
		}
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Create(ctx context.Context, input transport.CreateCustomerInput) (*models.Customer, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}

	customer := &models.Customer{
		Name:     input.Name,
		Phone:    input.Phone,
		Email:    input.Email,
		IsActive: true,
	}
	if err := s.Store.CreateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, input transport.UpdateCustomerInput) (*models.Customer, error) {
	customer, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
		}
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.IsActive != nil {
		customer.IsActive = *input.IsActive
	}

	if err := s.Store.SaveCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Remove refuses to delete a customer that any order still references, so an
// order's customer reference stays valid for the order's lifetime.
func (s *CustomerService) Remove(ctx context.Context, id uuid.UUID) (int64, error) {
	referenced, err := s.Store.CustomerOrderCount(ctx, id)
	if err != nil {
		return 0, err
	}
	if referenced > 0 {
		return 0, fmt.Errorf("%w: customer %s is referenced by %d order(s)", ErrConflict, id, referenced)
	}

	deleted, err := s.Store.DeleteCustomer(ctx, id)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, fmt.Errorf("%w: customer %s", ErrNotFound, id)
	}
	return deleted, nil
}
