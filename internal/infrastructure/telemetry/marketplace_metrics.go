package telemetry

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
)

// ErrMeterNil is returned when NewMarketplaceMetrics gets no meter.
var ErrMeterNil = errors.New("telemetry: meter cannot be nil")

// Stock rejection reasons.
const (
	RejectionInactive          = "inactive"
	RejectionInsufficientStock = "insufficient_stock"
)

// MarketplaceMetrics records order, commission and upload activity.
// A nil *MarketplaceMetrics is valid and records nothing.
type MarketplaceMetrics struct {
	ordersPlaced    *Counter
	orderValue      *Counter
	commission      *Counter
	stockRejections *Counter
	statusChanges   *Counter
	uploads         *Counter
	uploadSize      *Histogram
}

// NewMarketplaceMetrics registers the marketplace instruments on meter.
func NewMarketplaceMetrics(meter metric.Meter) (*MarketplaceMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	m := &MarketplaceMetrics{}
	var err error

	if m.ordersPlaced, err = NewCounter(meter, "ivoirestore_orders_placed_total", "Orders placed", "{orders}"); err != nil {
		return nil, err
	}
	if m.orderValue, err = NewCounter(meter, "ivoirestore_order_value_total", "Total value of placed orders", "FCFA"); err != nil {
		return nil, err
	}
	if m.commission, err = NewCounter(meter, "ivoirestore_commission_total", "Commission computed on placed orders", "FCFA"); err != nil {
		return nil, err
	}
	if m.stockRejections, err = NewCounter(meter, "ivoirestore_order_rejections_total", "Orders rejected for availability", "{orders}"); err != nil {
		return nil, err
	}
	if m.statusChanges, err = NewCounter(meter, "ivoirestore_order_status_changes_total", "Order status updates", "{updates}"); err != nil {
		return nil, err
	}
	if m.uploads, err = NewCounter(meter, "ivoirestore_uploads_total", "Images uploaded", "{images}"); err != nil {
		return nil, err
	}
	m.uploadSize, err = NewHistogram(meter, "ivoirestore_upload_size_bytes", "Uploaded image size", "By",
		64<<10, 256<<10, 512<<10, 1<<20, 2<<20, 5<<20)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordOrderPlaced records a successfully placed order.
func (m *MarketplaceMetrics) RecordOrderPlaced(ctx context.Context, boutiqueID uuid.UUID, total decimal.Decimal, commission int64) {
	if m == nil {
		return
	}
	attr := AttrBoutiqueID.String(boutiqueID.String())
	m.ordersPlaced.Inc(ctx, attr)
	m.orderValue.Add(ctx, total.Round(0).IntPart(), attr)
	m.commission.Add(ctx, commission, attr)
}

// RecordOrderRejected records an order refused because the product was inactive or short.
func (m *MarketplaceMetrics) RecordOrderRejected(ctx context.Context, reason string) {
	if m == nil {
		return
	}
	m.stockRejections.Inc(ctx, AttrReason.String(reason))
}

// RecordStatusChange records an order status update.
func (m *MarketplaceMetrics) RecordStatusChange(ctx context.Context, status string) {
	if m == nil {
		return
	}
	m.statusChanges.Inc(ctx, AttrOrderStatus.String(status))
}

// RecordUpload records a stored image.
func (m *MarketplaceMetrics) RecordUpload(ctx context.Context, folder, contentType string, size int64) {
	if m == nil {
		return
	}
	m.uploads.Inc(ctx, AttrFolder.String(folder), AttrContentType.String(contentType))
	m.uploadSize.Record(ctx, size, AttrFolder.String(folder))
}
