package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/ivoirestore/backend/internal/domain/shared"
)

// AdminRepository defines the interface for admin persistence
type AdminRepository interface {
	// Create inserts a new account; a duplicate email yields ErrEmailTaken
	Create(ctx context.Context, admin *Admin) error

	// Update persists changes to an existing account
	Update(ctx context.Context, admin *Admin) error

	FindByID(ctx context.Context, id uuid.UUID) (*Admin, error)
	FindByEmail(ctx context.Context, email string) (*Admin, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// First returns the oldest account
	First(ctx context.Context) (*Admin, error)

	List(ctx context.Context, page shared.Page) ([]Admin, int64, error)
}
