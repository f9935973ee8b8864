package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ivoirestore/backend/internal/domain/identity"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// ErrAdminNotFound is returned when no admin account matches
var ErrAdminNotFound = shared.NewNotFoundError("Administrateur introuvable.")

// GormAdminRepository implements identity.AdminRepository using GORM
type GormAdminRepository struct {
	db *gorm.DB
}

// NewGormAdminRepository creates a new GormAdminRepository
func NewGormAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{db: db}
}

// Create inserts a new account. A unique-index violation on email becomes
// identity.ErrEmailTaken, covering concurrent registrations with the same email.
func (r *GormAdminRepository) Create(ctx context.Context, admin *identity.Admin) error {
	if err := r.db.WithContext(ctx).Create(admin).Error; err != nil {
		return r.translateWrite(err)
	}
	return nil
}

// Update persists changes to an existing account
func (r *GormAdminRepository) Update(ctx context.Context, admin *identity.Admin) error {
	result := r.db.WithContext(ctx).
		Model(&identity.Admin{}).
		Where("id = ?", admin.ID).
		Updates(map[string]any{
			"name":       admin.Name,
			"email":      admin.Email,
			"password":   admin.PasswordHash,
			"role":       admin.Role,
			"updated_at": admin.UpdatedAt,
		})
	if result.Error != nil {
		return r.translateWrite(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAdminNotFound
	}
	return nil
}

func (r *GormAdminRepository) translateWrite(err error) error {
	translated := translateError(err, ErrAdminNotFound)
	if errors.Is(translated, shared.ErrAlreadyExists) {
		return identity.ErrEmailTaken
	}
	return translated
}

// FindByID finds an account by id
func (r *GormAdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Admin, error) {
	var admin identity.Admin
	if err := r.db.WithContext(ctx).First(&admin, "id = ?", id).Error; err != nil {
		return nil, translateError(err, ErrAdminNotFound)
	}
	return &admin, nil
}

// FindByEmail finds an account by normalized email, password hash included
func (r *GormAdminRepository) FindByEmail(ctx context.Context, email string) (*identity.Admin, error) {
	var admin identity.Admin
	if err := r.db.WithContext(ctx).
		Where("email = ?", identity.NormalizeEmail(email)).
		First(&admin).Error; err != nil {
		return nil, translateError(err, ErrAdminNotFound)
	}
	return &admin, nil
}

// ExistsByEmail reports whether an account uses the email
func (r *GormAdminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&identity.Admin{}).
		Where("email = ?", identity.NormalizeEmail(email)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// First returns the oldest account
func (r *GormAdminRepository) First(ctx context.Context) (*identity.Admin, error) {
	var admin identity.Admin
	if err := r.db.WithContext(ctx).Order("created_at ASC").First(&admin).Error; err != nil {
		return nil, translateError(err, ErrAdminNotFound)
	}
	return &admin, nil
}

// List returns one page of accounts, newest first
func (r *GormAdminRepository) List(ctx context.Context, page shared.Page) ([]identity.Admin, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&identity.Admin{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	admins := []identity.Admin{}
	if total == 0 {
		return admins, 0, nil
	}
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&admins).Error; err != nil {
		return nil, 0, err
	}
	return admins, total, nil
}

var _ identity.AdminRepository = (*GormAdminRepository)(nil)
