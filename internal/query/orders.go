package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avdeyev/order_crm/internal/models"
	"github.com/avdeyev/order_crm/internal/repo"
	"github.com/avdeyev/order_crm/internal/service"
)

// OrderReader is the read side for orders. Every order it returns carries its
// customer and full product set; callers never see an unhydrated order.
type OrderReader struct {
	Store *repo.Store
}

func NewOrderReader(store *repo.Store) *OrderReader {
	return &OrderReader{Store: store}
}

func (r *OrderReader) List(ctx context.Context) ([]models.Order, error) {
	return r.Store.Orders(ctx)
}

func (r *OrderReader) Get(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := r.Store.OrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %s", service.ErrNotFound, id)
		}
		return nil, err
	}
	return order, nil
}
