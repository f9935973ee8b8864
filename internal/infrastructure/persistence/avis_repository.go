package persistence

import (
	"context"

	"github.com/ivoirestore/backend/internal/domain/feedback"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAvisRepository implements feedback.AvisRepository using GORM
type GormAvisRepository struct {
	db *gorm.DB
}

// NewGormAvisRepository creates a new GormAvisRepository
func NewGormAvisRepository(db *gorm.DB) *GormAvisRepository {
	return &GormAvisRepository{db: db}
}

// Create inserts a review
func (r *GormAvisRepository) Create(ctx context.Context, avis *feedback.Avis) error {
	return r.db.WithContext(ctx).Create(avis).Error
}

// List returns one page of reviews, newest first
func (r *GormAvisRepository) List(ctx context.Context, page shared.Page) ([]feedback.Avis, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&feedback.Avis{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	reviews := []feedback.Avis{}
	if total == 0 {
		return reviews, 0, nil
	}
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

var _ feedback.AvisRepository = (*GormAvisRepository)(nil)
