package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ivoirestore/backend/internal/domain/catalog"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"github.com/ivoirestore/backend/internal/domain/trade"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrOrderNotFound is returned when no order has the requested id
var ErrOrderNotFound = shared.NewNotFoundError("Commande introuvable.")

// GormOrderRepository implements trade.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Place decrements stock and inserts the order in a single transaction. The UPDATE
// only matches while enough stock remains on an active product, so concurrent orders
// for the last units cannot both succeed.
func (r *GormOrderRepository) Place(ctx context.Context, order *trade.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&catalog.Product{}).
			Where("id = ? AND stock >= ? AND is_active = ?", order.ProductID, order.Quantity, true).
			UpdateColumns(map[string]any{
				"stock":      gorm.Expr("stock - ?", order.Quantity),
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return trade.ErrStockConflict
		}

		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return translateError(err, ErrOrderNotFound)
		}
		return nil
	})
}

// FindByID finds an order with its product and boutique loaded
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Order, error) {
	var order trade.Order
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Boutique").
		First(&order, "id = ?", id).Error; err != nil {
		return nil, translateError(err, ErrOrderNotFound)
	}
	return &order, nil
}

// List returns one page of orders, newest first
func (r *GormOrderRepository) List(ctx context.Context, filter trade.OrderFilter, page shared.Page) ([]trade.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&trade.Order{})
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.BoutiqueID != nil {
		query = query.Where("boutique_id = ?", *filter.BoutiqueID)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orders := []trade.Order{}
	if total == 0 {
		return orders, 0, nil
	}
	if err := query.Session(&gorm.Session{}).
		Preload("Product").
		Preload("Boutique").
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateStatus overwrites the status of an order
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status trade.OrderStatus) error {
	result := r.db.WithContext(ctx).
		Model(&trade.Order{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{"status": status, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

var _ trade.OrderRepository = (*GormOrderRepository)(nil)
