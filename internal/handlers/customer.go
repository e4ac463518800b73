package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avdeyev/order_crm/internal/mykafka"
	"github.com/avdeyev/order_crm/internal/service"
	"github.com/avdeyev/order_crm/internal/transport"
)

type CustomerHandler struct {
	Service  *service.CustomerService
	Producer *mykafka.Producer
}

func (h *CustomerHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "customer_events", fmt.Sprint(event["customerID"]), event); err != nil {
		c.Logger().Errorf("kafka publish error: %v", err)
	}
}

func (h *CustomerHandler) GetCustomers(c echo.Context) error {
	customers, err := h.Service.List(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	customer, err := h.Service.Get(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var input transport.CreateCustomerInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	customer, err := h.Service.Create(c.Request().Context(), input)
	if err != nil {
		return errorResponse(c, err)
	}

	h.publish(c, map[string]any{
		"type":       "customer_created",
		"customerID": customer.ID,
	})
	return c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) PatchCustomer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var input transport.UpdateCustomerInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	customer, err := h.Service.Update(c.Request().Context(), id, input)
	if err != nil {
		return errorResponse(c, err)
	}

	h.publish(c, map[string]any{
		"type":       "customer_updated",
		"customerID": customer.ID,
	})
	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	deleted, err := h.Service.Remove(c.Request().Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}

	h.publish(c, map[string]any{
		"type":       "customer_removed",
		"customerID": id,
	})
	return c.JSON(http.StatusOK, map[string]any{"deleted": deleted})
}
