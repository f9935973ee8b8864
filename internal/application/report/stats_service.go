// Package report builds the admin dashboard.
package report

import (
	"context"
	"strings"

	"github.com/ivoirestore/backend/internal/domain/report"
	"github.com/ivoirestore/backend/internal/domain/trade"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// OrderStats counts orders overall and per status
type OrderStats struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"parStatut"`
}

// ProductStats counts active products
type ProductStats struct {
	Total int64 `json:"total"`
}

// BoutiqueStats splits boutiques by verification
type BoutiqueStats struct {
	Total      int64 `json:"total"`
	Verified   int64 `json:"verifiees"`
	Unverified int64 `json:"nonVerifiees"`
}

// AdminStats counts admin accounts
type AdminStats struct {
	Total int64 `json:"total"`
}

// DashboardStats is the admin dashboard payload. Commission revenue covers delivered
// and commission_paid orders.
type DashboardStats struct {
	Orders               OrderStats    `json:"commandes"`
	CommissionRevenue    string        `json:"revenuCommission"`
	CommissionRevenueRaw int64         `json:"revenuCommissionBrut"`
	Products             ProductStats  `json:"produits"`
	Boutiques            BoutiqueStats `json:"boutiques"`
	Admins               AdminStats    `json:"admins"`
}

// StatsService aggregates dashboard counters
type StatsService struct {
	repo   report.DashboardRepository
	logger *zap.Logger
}

// NewStatsService creates a new StatsService
func NewStatsService(repo report.DashboardRepository, logger *zap.Logger) *StatsService {
	return &StatsService{repo: repo, logger: logger}
}

// Dashboard runs the counting queries concurrently and assembles the result. The first
// failing query cancels the others.
func (s *StatsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	var (
		byStatus          map[trade.OrderStatus]int64
		activeProducts    int64
		boutiques         int64
		verifiedBoutiques int64
		admins            int64
		commission        int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byStatus, err = s.repo.CountOrdersByStatus(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		activeProducts, err = s.repo.CountActiveProducts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		boutiques, verifiedBoutiques, err = s.repo.CountBoutiques(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		admins, err = s.repo.CountAdmins(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		commission, err = s.repo.SumCommission(gctx, trade.CommissionEarningStatuses)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Dashboard query failed", zap.Error(err))
		return nil, err
	}

	orders := OrderStats{ByStatus: make(map[string]int64, len(trade.AllOrderStatuses))}
	for _, status := range trade.AllOrderStatuses {
		count := byStatus[status]
		orders.ByStatus[string(status)] = count
		orders.Total += count
	}

	return &DashboardStats{
		Orders:               orders,
		CommissionRevenue:    FormatFCFA(commission),
		CommissionRevenueRaw: commission,
		Products:             ProductStats{Total: activeProducts},
		Boutiques: BoutiqueStats{
			Total:      boutiques,
			Verified:   verifiedBoutiques,
			Unverified: boutiques - verifiedBoutiques,
		},
		Admins: AdminStats{Total: admins},
	}, nil
}

var frenchPrinter = message.NewPrinter(language.French)

// FormatFCFA renders an amount with French digit grouping, e.g. "12 345 FCFA".
func FormatFCFA(amount int64) string {
	formatted := frenchPrinter.Sprintf("%d", amount)
	// CLDR groups French digits with a no-break space.
	formatted = strings.NewReplacer("\u00a0", " ", "\u202f", " ").Replace(formatted)
	return formatted + " FCFA"
}
