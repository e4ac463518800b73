package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avdeyev/order_crm/internal/logging"
	"github.com/avdeyev/order_crm/internal/metrics"
	"github.com/avdeyev/order_crm/internal/mykafka"
	"github.com/avdeyev/order_crm/internal/query"
	"github.com/avdeyev/order_crm/internal/service"
	"github.com/avdeyev/order_crm/internal/transport"
)

type OrderHandler struct {
	Service  *service.OrderService
	Reader   *query.OrderReader
	Producer *mykafka.Producer
	Metrics  *metrics.OrderMetrics
}

func (h *OrderHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "order_events", fmt.Sprint(event["orderID"]), event); err != nil {
		c.Logger().Errorf("kafka publish error: %v", err)
	}
}

func (h *OrderHandler) fail(operation string, err error) error {
	if h.Metrics != nil {
		h.Metrics.OperationFailed(operation)
	}
	return err
}

func (h *OrderHandler) GetOrders(c echo.Context) error {
	orders, err := h.Reader.List(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.Reader.Get(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order_create")

	var input transport.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Service.Create(ctx, input)
	if err != nil {
		l.Warn("order_create_failed", "error", err)
		return errorResponse(c, h.fail("create", err))
	}

	if h.Metrics != nil {
		h.Metrics.OrderCreated()
	}
	h.publish(c, map[string]any{
		"type":        "order_created",
		"orderID":     order.ID,
		"orderNumber": order.OrderNumber,
		"customerID":  order.CustomerID,
	})
	l.Info("order_created", "order_id", order.ID)

	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) PatchOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order_update")

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var input transport.UpdateOrderInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	order, err := h.Service.Update(ctx, id, input)
	if err != nil {
		l.Warn("order_update_failed", "order_id", id, "error", err)
		return errorResponse(c, h.fail("update", err))
	}

	if h.Metrics != nil {
		h.Metrics.OrderUpdated()
	}
	h.publish(c, map[string]any{
		"type":    "order_updated",
		"orderID": order.ID,
	})

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	deleted, err := h.Service.Remove(ctx, id)
	if err != nil {
		return errorResponse(c, h.fail("remove", err))
	}

	if h.Metrics != nil {
		h.Metrics.OrderRemoved()
	}
	h.publish(c, map[string]any{
		"type":    "order_removed",
		"orderID": id,
	})

	return c.JSON(http.StatusOK, map[string]any{"deleted": deleted})
}

func (h *OrderHandler) AddProduct(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	productID, err := parseID(c, "productID")
	if err != nil {
		return err
	}

	order, err := h.Service.AddProduct(ctx, orderID, productID)
	if err != nil {
		return errorResponse(c, h.fail("add_product", err))
	}

	if h.Metrics != nil {
		h.Metrics.ProductAdded()
	}
	h.publish(c, map[string]any{
		"type":      "order_product_added",
		"orderID":   orderID,
		"productID": productID,
	})

	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) RemoveProduct(c echo.Context) error {
	ctx := c.Request().Context()

	orderID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	productID, err := parseID(c, "productID")
	if err != nil {
		return err
	}

	order, err := h.Service.RemoveProduct(ctx, orderID, productID)
	if err != nil {
		return errorResponse(c, h.fail("remove_product", err))
	}

	if h.Metrics != nil {
		h.Metrics.ProductRemoved()
	}
	h.publish(c, map[string]any{
		"type":      "order_product_removed",
		"orderID":   orderID,
		"productID": productID,
	})

	return c.JSON(http.StatusOK, order)
}
