package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avdeyev/order_crm/internal/models"
	"github.com/avdeyev/order_crm/internal/repo"
)

// RelationResolver validates referenced customer and product ids against the
// store and returns the loaded records. It never writes; a missing id fails
// the whole resolution with RelationNotFoundError.
type RelationResolver struct {
	Store *repo.Store
}

func NewRelationResolver(store *repo.Store) *RelationResolver {
	return &RelationResolver{Store: store}
}

func (r *RelationResolver) Resolve(ctx context.Context, customerID uuid.UUID, productIDs []uuid.UUID) (*models.Customer, []models.Product, error) {
	customer, err := r.ResolveCustomer(ctx, customerID)
	if err != nil {
		return nil, nil, err
	}
	products, err := r.ResolveProducts(ctx, productIDs)
	if err != nil {
		return nil, nil, err
	}
	return customer, products, nil
}

func (r *RelationResolver) ResolveCustomer(ctx context.Context, customerID uuid.UUID) (*models.Customer, error) {
	customer, err := r.Store.CustomerByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &RelationNotFoundError{Entity: "customer", IDs: []uuid.UUID{customerID}}
		}
		return nil, err
	}
	return customer, nil
}

// ResolveProducts fetches the whole id set with one batch query and rejects
// the call when any id is missing. Duplicate ids collapse to one membership.
func (r *RelationResolver) ResolveProducts(ctx context.Context, productIDs []uuid.UUID) ([]models.Product, error) {
	ids := dedupeIDs(productIDs)

	products, err := r.Store.ProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(products) != len(ids) {
		found := make(map[uuid.UUID]struct{}, len(products))
		for i := range products {
			found[products[i].ID] = struct{}{}
		}
		var missing []uuid.UUID
		for _, id := range ids {
			if _, ok := found[id]; !ok {
				missing = append(missing, id)
			}
		}
		return nil, &RelationNotFoundError{Entity: "product", IDs: missing}
	}
	return products, nil
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
