package query

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/avdeyev/order_crm/internal/config"
	"github.com/avdeyev/order_crm/internal/models"
	"github.com/avdeyev/order_crm/internal/repo"
	"github.com/avdeyev/order_crm/internal/service"
)

func newTestStore(t *testing.T) *repo.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	require.NoError(t, config.Migrate(db))

	return repo.NewStore(db)
}

func TestOrderReader_AlwaysHydratesRelations(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := newTestStore(t)
	reader := NewOrderReader(store)

	customer := &models.Customer{Name: "Alice", IsActive: true}
	require.NoError(t, store.CreateCustomer(ctx, customer))
	product := &models.Product{Name: "keyboard", Price: 49.90, IsActive: true}
	require.NoError(t, store.CreateProduct(ctx, product))

	order := &models.Order{
		OrderNumber: "O-1",
		CustomerID:  customer.ID,
		Products:    []models.Product{*product},
		IsActive:    true,
	}
	require.NoError(t, store.CreateOrder(ctx, order))

	got, err := reader.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, got.Customer.ID)
	assert.Equal(t, "Alice", got.Customer.Name)
	require.Len(t, got.Products, 1)
	assert.Equal(t, product.ID, got.Products[0].ID)

	orders, err := reader.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, customer.ID, orders[0].Customer.ID)
	require.Len(t, orders[0].Products, 1)
}

func TestOrderReader_Get_NotFound(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	reader := NewOrderReader(store)

	_, err := reader.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, service.ErrNotFound)
}
