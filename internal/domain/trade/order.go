package trade

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/ivoirestore/backend/internal/domain/catalog"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderStatus is the delivery/payment stage of an order.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusTransmitted    OrderStatus = "transmitted"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCommissionPaid OrderStatus = "commission_paid"
)

// AllOrderStatuses lists every status in lifecycle order.
var AllOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusTransmitted,
	OrderStatusDelivered,
	OrderStatusCommissionPaid,
}

// CommissionEarningStatuses are the statuses whose commission counts as revenue.
var CommissionEarningStatuses = []OrderStatus{
	OrderStatusDelivered,
	OrderStatusCommissionPaid,
}

// IsValid reports whether s is one of the known statuses.
func (s OrderStatus) IsValid() bool {
	for _, known := range AllOrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ErrInvalidStatus is returned for a status outside AllOrderStatuses.
var ErrInvalidStatus = shared.NewValidationError(
	"Statut invalide. Valeurs: pending, transmitted, delivered, commission_paid",
	shared.FieldError{Field: "status", Message: "Statut invalide. Valeurs: pending, transmitted, delivered, commission_paid"},
)

// ParseOrderStatus validates a raw status value.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(raw)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// Order errors
var (
	ErrProductUnavailable = shared.NewDomainError(shared.CodeProductUnavailable, "Ce produit n'est plus disponible.")
	// ErrStockConflict is returned by persistence when the conditional stock decrement
	// matched no row.
	ErrStockConflict = shared.NewDomainError(shared.CodeInsufficientStock, "Stock insuffisant.")
)

// NewInsufficientStockError reports the stock currently available.
func NewInsufficientStockError(available int) *shared.DomainError {
	return shared.NewDomainError(shared.CodeInsufficientStock, fmt.Sprintf("Stock insuffisant. Stock disponible : %d", available))
}

// Customer field limits, checked on the stored (escaped) text.
const (
	CustomerNameMaxLength     = 100
	CustomerPhoneMaxLength    = 50
	CustomerLocationMaxLength = 255
)

// Customer identifies who ordered and where to deliver.
type Customer struct {
	Name     string
	Phone    string
	Location string
}

// Validate checks that every customer field is present and fits its column.
func (c Customer) Validate() error {
	var details []shared.FieldError
	if strings.TrimSpace(c.Name) == "" {
		details = append(details, shared.FieldError{Field: "customerName", Message: "Le nom du client est obligatoire"})
	} else if utf8.RuneCountInString(c.Name) > CustomerNameMaxLength {
		details = append(details, shared.FieldError{Field: "customerName", Message: "Le nom ne peut pas dépasser 100 caractères"})
	}
	if strings.TrimSpace(c.Phone) == "" {
		details = append(details, shared.FieldError{Field: "customerPhone", Message: "Le téléphone du client est obligatoire"})
	} else if utf8.RuneCountInString(c.Phone) > CustomerPhoneMaxLength {
		details = append(details, shared.FieldError{Field: "customerPhone", Message: "Le téléphone ne peut pas dépasser 50 caractères"})
	}
	if strings.TrimSpace(c.Location) == "" {
		details = append(details, shared.FieldError{Field: "customerLocation", Message: "La localisation du client est obligatoire"})
	} else if utf8.RuneCountInString(c.Location) > CustomerLocationMaxLength {
		details = append(details, shared.FieldError{Field: "customerLocation", Message: "La localisation ne peut pas dépasser 255 caractères"})
	}
	if len(details) > 0 {
		return shared.NewValidationError("Données invalides.", details...)
	}
	return nil
}

// Order (commande) is a cash-on-delivery purchase of one product. TotalPrice and
// CommissionAmount are fixed when the order is placed.
type Order struct {
	shared.BaseEntity
	CustomerName     string            `gorm:"type:varchar(100);not null"`
	CustomerPhone    string            `gorm:"type:varchar(50);not null"`
	CustomerLocation string            `gorm:"type:varchar(255);not null"`
	ProductID        uuid.UUID         `gorm:"type:uuid;not null;index"`
	Product          *catalog.Product  `gorm:"foreignKey:ProductID"`
	BoutiqueID       uuid.UUID         `gorm:"type:uuid;not null;index"`
	Boutique         *catalog.Boutique `gorm:"foreignKey:BoutiqueID"`
	Quantity         int               `gorm:"not null"`
	TotalPrice       decimal.Decimal   `gorm:"type:decimal(18,2);not null"`
	CommissionAmount int64             `gorm:"not null"`
	Status           OrderStatus       `gorm:"type:varchar(20);not null;index"`
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder places a pending order for quantity units of product. The product must be
// loaded with its boutique so the commission rate is known; a product without one is
// unavailable.
func NewOrder(customer Customer, product *catalog.Product, quantity int) (*Order, error) {
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, shared.NewValidationError("La quantité doit être au moins 1",
			shared.FieldError{Field: "quantity", Message: "La quantité doit être au moins 1"})
	}
	if product == nil {
		return nil, shared.NewNotFoundError("Produit introuvable.")
	}
	if !product.IsActive || product.Boutique == nil {
		return nil, ErrProductUnavailable
	}
	if !product.HasStock(quantity) {
		return nil, NewInsufficientStockError(product.Stock)
	}

	total := product.Price.Mul(decimal.NewFromInt(int64(quantity)))

	return &Order{
		BaseEntity:       shared.NewBaseEntity(),
		CustomerName:     customer.Name,
		CustomerPhone:    customer.Phone,
		CustomerLocation: customer.Location,
		ProductID:        product.ID,
		BoutiqueID:       product.BoutiqueID,
		Quantity:         quantity,
		TotalPrice:       total,
		CommissionAmount: CalculateCommission(total, product.CommissionRate()),
		Status:           OrderStatusPending,
	}, nil
}

// ChangeStatus overwrites the status. Any known status may follow any other.
func (o *Order) ChangeStatus(status OrderStatus) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	o.Status = status
	o.Touch()
	return nil
}
