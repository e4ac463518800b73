package transport

import (
	"time"

	"github.com/google/uuid"
)

// Input structs are declared by hand per operation; update inputs use pointer
// fields so an absent field is distinguishable from a zero value.

type CreateCustomerInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

type UpdateCustomerInput struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type CreateProductInput struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type UpdateProductInput struct {
	Name     *string  `json:"name,omitempty"`
	Price    *float64 `json:"price,omitempty"`
	IsActive *bool    `json:"is_active,omitempty"`
}

type CreateOrderInput struct {
	OrderNumber string      `json:"order_number"`
	OrderDate   *time.Time  `json:"order_date,omitempty"`
	CustomerID  uuid.UUID   `json:"customer_id"`
	ProductIDs  []uuid.UUID `json:"product_ids"`
}

// UpdateOrderInput carries no order number: it is immutable after creation.
// A nil ProductIDs leaves the set untouched; a present one replaces it
// wholesale.
type UpdateOrderInput struct {
	OrderDate  *time.Time   `json:"order_date,omitempty"`
	CustomerID *uuid.UUID   `json:"customer_id,omitempty"`
	ProductIDs *[]uuid.UUID `json:"product_ids,omitempty"`
	IsActive   *bool        `json:"is_active,omitempty"`
}
