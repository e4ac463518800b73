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

type ProductService struct {
	Store *repo.Store
}

func NewProductService(store *repo.Store) *ProductService {
	return &ProductService{Store: store}
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.Store.Products(ctx)
}

func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.Store.ProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return nil, err
	}
	return product, nil
}

// ExistsAllByIDs reports whether every id in the set resolves, with one batch
// query.
func (s *ProductService) ExistsAllByIDs(ctx context.Context, ids []uuid.UUID) (bool, error) {
	unique := dedupeIDs(ids)
	products, err := s.Store.ProductsByIDs(ctx, unique)
	if err != nil {
		return false, err
	}
	return len(products) == len(unique), nil
}

func (s *ProductService) Create(ctx context.Context, input transport.CreateProductInput) (*models.Product, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}

	product := &models.Product{
		Name:     input.Name,
		Price:    input.Price,
		IsActive: true,
	}
	if err := s.Store.CreateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, input transport.UpdateProductInput) (*models.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
		}
		product.Name = *input.Name
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
		}
		product.Price = *input.Price
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.Store.SaveProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Remove deletes the product and its association rows; orders that referenced
// it keep their other products. Customer and order rows are never touched.
func (s *ProductService) Remove(ctx context.Context, id uuid.UUID) (int64, error) {
	deleted, err := s.Store.DeleteProduct(ctx, id)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, fmt.Errorf("%w: product %s", ErrNotFound, id)
	}
	return deleted, nil
}
