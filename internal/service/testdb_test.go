package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/avdeyev/order_crm/internal/config"
	"github.com/avdeyev/order_crm/internal/models"
	"github.com/avdeyev/order_crm/internal/repo"
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

func createTestCustomer(t *testing.T, store *repo.Store, name string) *models.Customer {
	t.Helper()

	customer := &models.Customer{Name: name, IsActive: true}
	require.NoError(t, store.CreateCustomer(context.Background(), customer))
	return customer
}

func createTestProduct(t *testing.T, store *repo.Store, name string, price float64) *models.Product {
	t.Helper()

	product := &models.Product{Name: name, Price: price, IsActive: true}
	require.NoError(t, store.CreateProduct(context.Background(), product))
	return product
}
