package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/ivoirestore/backend/internal/domain/shared"
)

// OrderFilter narrows order listings.
type OrderFilter struct {
	Status     *OrderStatus
	BoutiqueID *uuid.UUID
}

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// Place decrements the product stock by order.Quantity, only if enough stock remains
	// and the product is active, and inserts the order, in one transaction. It returns
	// ErrStockConflict when the conditional decrement matched no row.
	Place(ctx context.Context, order *Order) error

	// FindByID finds an order with its product and boutique loaded
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// List returns one page of orders, newest first, with product and boutique loaded
	List(ctx context.Context, filter OrderFilter, page shared.Page) ([]Order, int64, error)

	// UpdateStatus overwrites the status of an existing order
	UpdateStatus(ctx context.Context, id uuid.UUID, status OrderStatus) error
}
