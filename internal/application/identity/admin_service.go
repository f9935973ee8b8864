package identity

import (
	"context"
	"fmt"

	"github.com/ivoirestore/backend/internal/domain/identity"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"github.com/ivoirestore/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AdminService manages admin accounts outside the login flow
type AdminService struct {
	adminRepo identity.AdminRepository
	hasher    *auth.PasswordHasher
	logger    *zap.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(adminRepo identity.AdminRepository, hasher *auth.PasswordHasher, logger *zap.Logger) *AdminService {
	return &AdminService{
		adminRepo: adminRepo,
		hasher:    hasher,
		logger:    logger,
	}
}

// List returns one page of admin accounts
func (s *AdminService) List(ctx context.Context, page shared.Page) (shared.Paginated[AdminInfo], error) {
	admins, total, err := s.adminRepo.List(ctx, page)
	if err != nil {
		return shared.Paginated[AdminInfo]{}, err
	}
	items := make([]AdminInfo, len(admins))
	for i := range admins {
		items[i] = ToAdminInfo(&admins[i])
	}
	return shared.NewPaginated(items, total, page), nil
}

// ResetFirstAdmin rewrites the email and password of the oldest account. Used by the
// maintenance command to recover access.
func (s *AdminService) ResetFirstAdmin(ctx context.Context, email, password string) (*AdminInfo, error) {
	if err := identity.ValidatePassword(password); err != nil {
		return nil, err
	}

	admin, err := s.adminRepo.First(ctx)
	if err != nil {
		return nil, err
	}
	if err := admin.ChangeEmail(email); err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	admin.ChangePasswordHash(hash)

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info("Admin credentials reset",
		zap.String("admin_id", admin.ID.String()),
		zap.String("email", admin.Email))

	info := ToAdminInfo(admin)
	return &info, nil
}
