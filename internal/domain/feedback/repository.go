package feedback

import (
	"context"

	"github.com/ivoirestore/backend/internal/domain/shared"
)

// AvisRepository defines the interface for review persistence
type AvisRepository interface {
	Create(ctx context.Context, avis *Avis) error
	List(ctx context.Context, page shared.Page) ([]Avis, int64, error)
}
