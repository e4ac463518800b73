package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrValidation       = errors.New("validation")         // 400
	ErrNotFound         = errors.New("not found")          // 404
	ErrRelationNotFound = errors.New("relation not found") // 404
	ErrConflict         = errors.New("conflict")           // 409
)

// RelationNotFoundError carries the referenced ids that did not resolve.
type RelationNotFoundError struct {
	Entity string
	IDs    []uuid.UUID
}

func (e *RelationNotFoundError) Error() string {
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = id.String()
	}
	return fmt.Sprintf("%s not found: %s", e.Entity, strings.Join(ids, ", "))
}

func (e *RelationNotFoundError) Unwrap() error { return ErrRelationNotFound }

// ProductNotInOrderError reports a strict remove of a product that is not a
// member of the order's product set.
type ProductNotInOrderError struct {
	OrderID   uuid.UUID
	ProductID uuid.UUID
}

func (e *ProductNotInOrderError) Error() string {
	return fmt.Sprintf("product %s is not part of order %s", e.ProductID, e.OrderID)
}

func (e *ProductNotInOrderError) Unwrap() error { return ErrRelationNotFound }
