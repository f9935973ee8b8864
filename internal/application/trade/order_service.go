// Package trade runs the cash-on-delivery order workflow.
package trade

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ivoirestore/backend/internal/domain/catalog"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"github.com/ivoirestore/backend/internal/domain/trade"
	"github.com/ivoirestore/backend/internal/infrastructure/logger"
	"github.com/ivoirestore/backend/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// maxPlaceAttempts bounds retries when the stock changed between the read and the
// conditional decrement but still covers the order.
const maxPlaceAttempts = 3

// Order errors
var (
	ErrProductNotFound  = shared.NewNotFoundError("Produit introuvable.")
	ErrInvalidProductID = shared.NewValidationError("ID de produit invalide",
		shared.FieldError{Field: "product", Message: "ID de produit invalide"})
)

// OrderMetrics receives order activity. *telemetry.MarketplaceMetrics implements it.
type OrderMetrics interface {
	RecordOrderPlaced(ctx context.Context, boutiqueID uuid.UUID, total decimal.Decimal, commission int64)
	RecordOrderRejected(ctx context.Context, reason string)
	RecordStatusChange(ctx context.Context, status string)
}

// OrderService places orders and manages their status
type OrderService struct {
	orderRepo   trade.OrderRepository
	productRepo catalog.ProductRepository
	metrics     OrderMetrics
	logger      *zap.Logger
}

// OrderServiceOption configures an OrderService
type OrderServiceOption func(*OrderService)

// WithMetrics records order activity on m
func WithMetrics(m OrderMetrics) OrderServiceOption {
	return func(s *OrderService) {
		s.metrics = m
	}
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo trade.OrderRepository,
	productRepo catalog.ProductRepository,
	log *zap.Logger,
	opts ...OrderServiceOption,
) *OrderService {
	s := &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Place creates a pending order and decrements the product stock. Total price and
// commission are computed here and never change afterwards.
func (s *OrderService) Place(ctx context.Context, req PlaceOrderRequest) (*OrderResponse, error) {
	req = req.Sanitized()

	productID, err := uuid.Parse(req.Product)
	if err != nil {
		return nil, ErrInvalidProductID
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	customer := trade.Customer{
		Name:     req.CustomerName,
		Phone:    req.CustomerPhone,
		Location: req.CustomerLocation,
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartServiceSpan(ctx, "order", "place",
		attribute.String(telemetry.SpanAttrProductID, productID.String()),
		attribute.Int(telemetry.SpanAttrQuantity, quantity),
	)
	defer span.End()

	var (
		order   *trade.Order
		product *catalog.Product
	)
	for attempt := 1; ; attempt++ {
		product, err = s.loadProduct(ctx, productID)
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}

		order, err = trade.NewOrder(customer, product, quantity)
		if err != nil {
			s.recordRejection(ctx, err)
			telemetry.RecordError(span, err)
			return nil, err
		}

		err = s.orderRepo.Place(ctx, order)
		if err == nil {
			break
		}
		if !errors.Is(err, trade.ErrStockConflict) {
			telemetry.RecordError(span, err)
			return nil, err
		}
		// Another order took the stock between the read and the decrement.
		telemetry.AddEvent(span, "stock_conflict", "attempt", attempt)
		if attempt == maxPlaceAttempts {
			latest, loadErr := s.loadProduct(ctx, productID)
			if loadErr != nil {
				telemetry.RecordError(span, loadErr)
				return nil, loadErr
			}
			err = trade.NewInsufficientStockError(latest.Stock)
			s.recordRejection(ctx, err)
			telemetry.RecordError(span, err)
			return nil, err
		}
	}

	order.Product = product
	order.Boutique = product.Boutique
	span.SetAttributes(
		attribute.String(telemetry.SpanAttrOrderID, order.ID.String()),
		attribute.String(telemetry.SpanAttrBoutiqueID, order.BoutiqueID.String()),
	)
	if s.metrics != nil {
		s.metrics.RecordOrderPlaced(ctx, order.BoutiqueID, order.TotalPrice, order.CommissionAmount)
	}

	logger.WithLogger(ctx, s.logger).Info("Order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("customer", order.CustomerName),
		zap.String("product", product.Name),
		zap.Int("quantity", order.Quantity),
		zap.Int64("commission_fcfa", order.CommissionAmount))

	resp := ToOrderResponse(order)
	return &resp, nil
}

// List returns one page of orders, newest first
func (s *OrderService) List(ctx context.Context, filter trade.OrderFilter, page shared.Page) (shared.Paginated[OrderResponse], error) {
	orders, total, err := s.orderRepo.List(ctx, filter, page)
	if err != nil {
		return shared.Paginated[OrderResponse]{}, err
	}
	return shared.NewPaginated(toOrderResponses(orders), total, page), nil
}

// UpdateStatus overwrites the order status. Any known status may replace any other.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateStatusRequest) (*OrderResponse, error) {
	status, err := trade.ParseOrderStatus(req.Status)
	if err != nil {
		return nil, err
	}

	ctx, span := telemetry.StartServiceSpan(ctx, "order", "update_status",
		attribute.String(telemetry.SpanAttrOrderID, id.String()),
		attribute.String(telemetry.SpanAttrStatus, string(status)),
	)
	defer span.End()

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.RecordStatusChange(ctx, string(status))
	}

	logger.WithLogger(ctx, s.logger).Info("Order status updated",
		zap.String("order_id", id.String()),
		zap.String("status", string(status)))

	resp := ToOrderResponse(order)
	return &resp, nil
}

func (s *OrderService) loadProduct(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *OrderService) recordRejection(ctx context.Context, err error) {
	if s.metrics == nil {
		return
	}
	switch {
	case errors.Is(err, trade.ErrProductUnavailable):
		s.metrics.RecordOrderRejected(ctx, telemetry.RejectionInactive)
	case errors.Is(err, trade.ErrStockConflict):
		s.metrics.RecordOrderRejected(ctx, telemetry.RejectionInsufficientStock)
	}
}
