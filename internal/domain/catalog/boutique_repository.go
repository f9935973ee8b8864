package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/ivoirestore/backend/internal/domain/shared"
)

// BoutiqueFilter narrows boutique listings.
type BoutiqueFilter struct {
	IsVerified *bool
}

// BoutiqueRepository defines the interface for boutique persistence
type BoutiqueRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Boutique, error)
	List(ctx context.Context, filter BoutiqueFilter, page shared.Page) ([]Boutique, int64, error)
	Save(ctx context.Context, boutique *Boutique) error

	// Delete deactivates every product of the boutique and removes the boutique in one
	// transaction. Products are kept.
	Delete(ctx context.Context, id uuid.UUID) error
}
