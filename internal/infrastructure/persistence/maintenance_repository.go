package persistence

import (
	"context"

	"github.com/ivoirestore/backend/internal/domain/catalog"
	"github.com/ivoirestore/backend/internal/domain/feedback"
	"github.com/ivoirestore/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// CleanReport counts the rows removed per table.
type CleanReport struct {
	Orders    int64
	Reviews   int64
	Products  int64
	Boutiques int64
}

// MaintenanceRepository runs bulk operations used by the maintenance CLI.
type MaintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository creates a new MaintenanceRepository
func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// CleanMarketplace deletes every order, review, product and boutique in one
// transaction. Admin accounts are kept.
func (r *MaintenanceRepository) CleanMarketplace(ctx context.Context) (CleanReport, error) {
	var report CleanReport
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})

		steps := []struct {
			model any
			count *int64
		}{
			{&trade.Order{}, &report.Orders},
			{&feedback.Avis{}, &report.Reviews},
			{&catalog.Product{}, &report.Products},
			{&catalog.Boutique{}, &report.Boutiques},
		}
		for _, step := range steps {
			result := all.Delete(step.model)
			if result.Error != nil {
				return result.Error
			}
			*step.count = result.RowsAffected
		}
		return nil
	})
	if err != nil {
		return CleanReport{}, err
	}
	return report, nil
}
