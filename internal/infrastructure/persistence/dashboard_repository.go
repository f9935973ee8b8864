package persistence

import (
	"context"

	"github.com/ivoirestore/backend/internal/domain/catalog"
	"github.com/ivoirestore/backend/internal/domain/identity"
	"github.com/ivoirestore/backend/internal/domain/report"
	"github.com/ivoirestore/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormDashboardRepository implements report.DashboardRepository using GORM
type GormDashboardRepository struct {
	db *gorm.DB
}

// NewGormDashboardRepository creates a new GormDashboardRepository
func NewGormDashboardRepository(db *gorm.DB) *GormDashboardRepository {
	return &GormDashboardRepository{db: db}
}

// CountOrdersByStatus groups orders by status
func (r *GormDashboardRepository) CountOrdersByStatus(ctx context.Context) (map[trade.OrderStatus]int64, error) {
	var rows []struct {
		Status trade.OrderStatus
		Count  int64
	}
	if err := r.db.WithContext(ctx).
		Model(&trade.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[trade.OrderStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// CountActiveProducts counts orderable products
func (r *GormDashboardRepository) CountActiveProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&catalog.Product{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

// CountBoutiques returns the total and verified boutique counts in one query
func (r *GormDashboardRepository) CountBoutiques(ctx context.Context) (int64, int64, error) {
	var row struct {
		Total    int64
		Verified int64
	}
	if err := r.db.WithContext(ctx).
		Model(&catalog.Boutique{}).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN is_verified THEN 1 ELSE 0 END), 0) AS verified").
		Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	return row.Total, row.Verified, nil
}

// CountAdmins counts admin accounts
func (r *GormDashboardRepository) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&identity.Admin{}).Count(&count).Error
	return count, err
}

// SumCommission totals commission_amount over orders in the given statuses
func (r *GormDashboardRepository) SumCommission(ctx context.Context, statuses []trade.OrderStatus) (int64, error) {
	if len(statuses) == 0 {
		return 0, nil
	}
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&trade.Order{}).
		Select("COALESCE(SUM(commission_amount), 0)").
		Where("status IN ?", statuses).
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

var _ report.DashboardRepository = (*GormDashboardRepository)(nil)
