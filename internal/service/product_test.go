package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeyev/order_crm/internal/transport"
)

func TestProductService_CreateAndUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := newTestStore(t)
	svc := NewProductService(store)

	product, err := svc.Create(ctx, transport.CreateProductInput{Name: "keyboard", Price: 49.90})
	require.NoError(t, err)
	assert.True(t, product.IsActive)

	price := 39.90
	updated, err := svc.Update(ctx, product.ID, transport.UpdateProductInput{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, price, updated.Price)
	assert.Equal(t, "keyboard", updated.Name)
}

func TestProductService_Validation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := newTestStore(t)
	svc := NewProductService(store)

	_, err := svc.Create(ctx, transport.CreateProductInput{Price: 1})
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, transport.CreateProductInput{Name: "keyboard", Price: -1})
	require.ErrorIs(t, err, ErrValidation)

	product, err := svc.Create(ctx, transport.CreateProductInput{Name: "keyboard", Price: 0})
	require.NoError(t, err)

	negative := -0.01
	_, err = svc.Update(ctx, product.ID, transport.UpdateProductInput{Price: &negative})
	require.ErrorIs(t, err, ErrValidation)
}

func TestProductService_ExistsAllByIDs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := newTestStore(t)
	svc := NewProductService(store)
	p1 := createTestProduct(t, store, "keyboard", 49.90)
	p2 := createTestProduct(t, store, "mouse", 19.90)

	ok, err := svc.ExistsAllByIDs(ctx, []uuid.UUID{p1.ID, p2.ID, p1.ID})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.ExistsAllByIDs(ctx, []uuid.UUID{p1.ID, uuid.New()})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProductService_Remove_KeepsOrderIntact(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := newTestStore(t)
	svc := NewProductService(store)
	orders := NewOrderService(store)

	customer := createTestCustomer(t, store, "Alice")
	p1 := createTestProduct(t, store, "keyboard", 49.90)
	p2 := createTestProduct(t, store, "mouse", 19.90)

	order, err := orders.Create(ctx, transport.CreateOrderInput{
		OrderNumber: "O-1",
		CustomerID:  customer.ID,
		ProductIDs:  []uuid.UUID{p1.ID, p2.ID},
	})
	require.NoError(t, err)

	deleted, err := svc.Remove(ctx, p2.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	reloaded, err := orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{p1.ID}, productIDs(reloaded))
	assert.Equal(t, customer.ID, reloaded.Customer.ID)

	_, err = svc.Remove(ctx, p2.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
