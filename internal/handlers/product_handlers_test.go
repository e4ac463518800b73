package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeyev/order_crm/internal/models"
	"github.com/avdeyev/order_crm/internal/mykafka"
	"github.com/avdeyev/order_crm/internal/repo"
	"github.com/avdeyev/order_crm/internal/service"
)

func newProductHandler(store *repo.Store) *ProductHandler {
	// nil indexer: search mirroring is a no-op in tests
	return &ProductHandler{
		Service:  service.NewProductService(store),
		Producer: &mykafka.Producer{},
	}
}

func TestCreateProductHandler(t *testing.T) {
	store := initTestDB(t)
	h := newProductHandler(store)

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/products", map[string]any{
		"name":  "keyboard",
		"price": 49.90,
	})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateProduct(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var product models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
	assert.Equal(t, "keyboard", product.Name)
	assert.Equal(t, 49.90, product.Price)
}

func TestCreateProductHandler_NegativePrice(t *testing.T) {
	store := initTestDB(t)
	h := newProductHandler(store)

	e := echo.New()
	req := jsonRequest(http.MethodPost, "/products", map[string]any{
		"name":  "keyboard",
		"price": -5,
	})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateProduct(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPatchProductHandler(t *testing.T) {
	store := initTestDB(t)
	h := newProductHandler(store)
	_, product := seedAggregate(t, store)

	e := echo.New()
	req := jsonRequest(http.MethodPatch, "/", map[string]any{"price": 39.90})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(product.ID.String())

	require.NoError(t, h.PatchProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 39.90, updated.Price)
	assert.Equal(t, product.Name, updated.Name)
}
