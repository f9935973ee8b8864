package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductFilter narrows product listings.
type ProductFilter struct {
	// Search is matched case-insensitively as a substring of name or description.
	Search          string
	BoutiqueID      *uuid.UUID
	MinPrice        *decimal.Decimal
	MaxPrice        *decimal.Decimal
	IncludeInactive bool
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product with its boutique loaded
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// List returns one page of products, newest first, and the total match count
	List(ctx context.Context, filter ProductFilter, page shared.Page) ([]Product, int64, error)

	// Save creates or updates a product (associations are not written)
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product
	Delete(ctx context.Context, id uuid.UUID) error
}
