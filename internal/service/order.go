package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avdeyev/order_crm/internal/models"
	"github.com/avdeyev/order_crm/internal/repo"
	"github.com/avdeyev/order_crm/internal/transport"
)

// OrderService owns every mutation of the order aggregate: the order row, its
// customer reference and its product set move through the store as one unit.
type OrderService struct {
	Store    *repo.Store
	Resolver *RelationResolver
}

func NewOrderService(store *repo.Store) *OrderService {
	return &OrderService{Store: store, Resolver: NewRelationResolver(store)}
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.Store.Orders(ctx)
}

func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.Store.OrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %s", ErrNotFound, id)
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Create(ctx context.Context, input transport.CreateOrderInput) (*models.Order, error) {
	if input.OrderNumber == "" {
		return nil, fmt.Errorf("%w: order_number required", ErrValidation)
	}
	if input.CustomerID == uuid.Nil {
		return nil, fmt.Errorf("%w: customer_id required", ErrValidation)
	}
	if len(input.ProductIDs) == 0 {
		return nil, fmt.Errorf("%w: product_ids required", ErrValidation)
	}

	customer, products, err := s.Resolver.Resolve(ctx, input.CustomerID, input.ProductIDs)
	if err != nil {
		return nil, err
	}

	orderDate := time.Now().UTC()
	if input.OrderDate != nil {
		orderDate = *input.OrderDate
	}

	order := &models.Order{
		OrderNumber: input.OrderNumber,
		OrderDate:   orderDate,
		CustomerID:  customer.ID,
		Customer:    *customer,
		Products:    products,
		IsActive:    true,
	}
	if err := s.Store.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Update applies only the fields present in the input. OrderNumber is assigned
// once at creation and never changes. A present customer id replaces the
// customer reference; a present product id set replaces the whole product set.
func (s *OrderService) Update(ctx context.Context, id uuid.UUID, input transport.UpdateOrderInput) (*models.Order, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.OrderDate != nil {
		order.OrderDate = *input.OrderDate
	}
	if input.IsActive != nil {
		order.IsActive = *input.IsActive
	}

	if input.CustomerID != nil {
		customer, err := s.Resolver.ResolveCustomer(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		order.CustomerID = customer.ID
		order.Customer = *customer
	}

	syncProducts := false
	if input.ProductIDs != nil {
		products, err := s.Resolver.ResolveProducts(ctx, *input.ProductIDs)
		if err != nil {
			return nil, err
		}
		order.Products = products
		syncProducts = true
	}

	if err := s.Store.SaveOrder(ctx, order, syncProducts); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Remove(ctx context.Context, id uuid.UUID) (int64, error) {
	deleted, err := s.Store.DeleteOrder(ctx, id)
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	return deleted, nil
}

// AddProduct is idempotent: adding a product that is already a member returns
// the unchanged order without a write.
func (s *OrderService) AddProduct(ctx context.Context, orderID, productID uuid.UUID) (*models.Order, error) {
	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	product, err := s.Store.ProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %s", ErrNotFound, productID)
		}
		return nil, err
	}

	for i := range order.Products {
		if order.Products[i].ID == productID {
			return order, nil
		}
	}

	order.Products = append(order.Products, *product)
	if err := s.Store.SaveOrder(ctx, order, true); err != nil {
		return nil, err
	}
	return order, nil
}

// RemoveProduct is strict: removing a product that is not a member is a caller
// error, not a no-op.
func (s *OrderService) RemoveProduct(ctx context.Context, orderID, productID uuid.UUID) (*models.Order, error) {
	order, err := s.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range order.Products {
		if order.Products[i].ID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, &ProductNotInOrderError{OrderID: orderID, ProductID: productID}
	}

	order.Products = append(order.Products[:idx], order.Products[idx+1:]...)
	if err := s.Store.SaveOrder(ctx, order, true); err != nil {
		return nil, err
	}
	return order, nil
}
