package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ivoirestore/backend/internal/domain/catalog"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// ErrBoutiqueNotFound is returned when no boutique has the requested id
var ErrBoutiqueNotFound = shared.NewNotFoundError("Boutique introuvable.")

// GormBoutiqueRepository implements catalog.BoutiqueRepository using GORM
type GormBoutiqueRepository struct {
	db *gorm.DB
}

// NewGormBoutiqueRepository creates a new GormBoutiqueRepository
func NewGormBoutiqueRepository(db *gorm.DB) *GormBoutiqueRepository {
	return &GormBoutiqueRepository{db: db}
}

// FindByID finds a boutique by its ID
func (r *GormBoutiqueRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Boutique, error) {
	var boutique catalog.Boutique
	if err := r.db.WithContext(ctx).First(&boutique, "id = ?", id).Error; err != nil {
		return nil, translateError(err, ErrBoutiqueNotFound)
	}
	return &boutique, nil
}

// List returns one page of boutiques, newest first
func (r *GormBoutiqueRepository) List(ctx context.Context, filter catalog.BoutiqueFilter, page shared.Page) ([]catalog.Boutique, int64, error) {
	query := r.db.WithContext(ctx).Model(&catalog.Boutique{})
	if filter.IsVerified != nil {
		query = query.Where("is_verified = ?", *filter.IsVerified)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	boutiques := []catalog.Boutique{}
	if total == 0 {
		return boutiques, 0, nil
	}
	if err := query.Session(&gorm.Session{}).
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&boutiques).Error; err != nil {
		return nil, 0, err
	}
	return boutiques, total, nil
}

// Save creates or updates a boutique
func (r *GormBoutiqueRepository) Save(ctx context.Context, boutique *catalog.Boutique) error {
	if err := r.db.WithContext(ctx).Save(boutique).Error; err != nil {
		return translateError(err, ErrBoutiqueNotFound)
	}
	return nil
}

// Delete deactivates the boutique's products and removes the boutique atomically
func (r *GormBoutiqueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&catalog.Product{}).
			Where("boutique_id = ?", id).
			UpdateColumns(map[string]any{"is_active": false, "updated_at": time.Now()}).Error; err != nil {
			return err
		}

		result := tx.Delete(&catalog.Boutique{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrBoutiqueNotFound
		}
		return nil
	})
}

var _ catalog.BoutiqueRepository = (*GormBoutiqueRepository)(nil)
