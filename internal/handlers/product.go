package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avdeyev/order_crm/internal/es"
	"github.com/avdeyev/order_crm/internal/mykafka"
	"github.com/avdeyev/order_crm/internal/service"
	"github.com/avdeyev/order_crm/internal/transport"
)

type ProductHandler struct {
	Service  *service.ProductService
	Producer *mykafka.Producer
	Indexer  *es.ProductIndexer
}

func (h *ProductHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "product_events", fmt.Sprint(event["productID"]), event); err != nil {
		c.Logger().Errorf("kafka publish error: %v", err)
	}
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	products, err := h.Service.List(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.Service.Get(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var input transport.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Service.Create(ctx, input)
	if err != nil {
		return errorResponse(c, err)
	}

	// The search index is a best-effort mirror of the store.
	if err := h.Indexer.IndexProduct(ctx, product); err != nil {
		c.Logger().Errorf("es index error: %v", err)
	}
	h.publish(c, map[string]any{
		"type":      "product_created",
		"productID": product.ID,
	})
	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) PatchProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var input transport.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	product, err := h.Service.Update(ctx, id, input)
	if err != nil {
		return errorResponse(c, err)
	}

	if err := h.Indexer.IndexProduct(ctx, product); err != nil {
		c.Logger().Errorf("es index error: %v", err)
	}
	h.publish(c, map[string]any{
		"type":      "product_updated",
		"productID": product.ID,
	})
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	deleted, err := h.Service.Remove(ctx, id)
	if err != nil {
		return errorResponse(c, err)
	}

	if err := h.Indexer.DeleteProduct(ctx, id.String()); err != nil {
		c.Logger().Errorf("es delete error: %v", err)
	}
	h.publish(c, map[string]any{
		"type":      "product_removed",
		"productID": id,
	})
	return c.JSON(http.StatusOK, map[string]any{"deleted": deleted})
}
