package report

import (
	"context"

	"github.com/ivoirestore/backend/internal/domain/trade"
)

// DashboardRepository answers the independent counting queries behind the admin
// dashboard. Each method is a single query so callers may run them in parallel.
type DashboardRepository interface {
	// CountOrdersByStatus returns the number of orders per status. Statuses with no
	// orders may be absent from the map.
	CountOrdersByStatus(ctx context.Context) (map[trade.OrderStatus]int64, error)

	// CountActiveProducts counts products with is_active = true
	CountActiveProducts(ctx context.Context) (int64, error)

	// CountBoutiques returns the total and verified boutique counts
	CountBoutiques(ctx context.Context) (total int64, verified int64, err error)

	// CountAdmins counts admin accounts
	CountAdmins(ctx context.Context) (int64, error)

	// SumCommission adds up commission_amount over orders in the given statuses
	SumCommission(ctx context.Context, statuses []trade.OrderStatus) (int64, error)
}
