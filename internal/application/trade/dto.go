package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/ivoirestore/backend/internal/application/sanitize"
	"github.com/ivoirestore/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// PlaceOrderRequest represents a customer order. Product is the product id.
type PlaceOrderRequest struct {
	CustomerName     string `json:"customerName" binding:"required,max=100"`
	CustomerPhone    string `json:"customerPhone" binding:"required,max=50"`
	CustomerLocation string `json:"customerLocation" binding:"required,max=255"`
	Product          string `json:"product" binding:"required"`
	Quantity         *int   `json:"quantity" binding:"omitempty,min=1"`
}

// Sanitized returns a copy with every text field normalized.
func (r PlaceOrderRequest) Sanitized() PlaceOrderRequest {
	r.CustomerName = sanitize.Text(r.CustomerName)
	r.CustomerPhone = sanitize.Text(r.CustomerPhone)
	r.CustomerLocation = sanitize.Text(r.CustomerLocation)
	r.Product = sanitize.Text(r.Product)
	return r
}

// UpdateStatusRequest carries the new order status
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// OrderProduct is the product summary embedded in order responses
type OrderProduct struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// OrderBoutique is the boutique summary embedded in order responses
type OrderBoutique struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID               uuid.UUID       `json:"id"`
	CustomerName     string          `json:"customerName"`
	CustomerPhone    string          `json:"customerPhone"`
	CustomerLocation string          `json:"customerLocation"`
	ProductID        uuid.UUID       `json:"productId"`
	Product          *OrderProduct   `json:"product"`
	BoutiqueID       uuid.UUID       `json:"boutiqueId"`
	Boutique         *OrderBoutique  `json:"boutique"`
	Quantity         int             `json:"quantity"`
	TotalPrice       decimal.Decimal `json:"totalPrice"`
	CommissionAmount int64           `json:"commissionAmount"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// ToOrderResponse converts a domain Order, embedding product and boutique when loaded.
func ToOrderResponse(o *trade.Order) OrderResponse {
	resp := OrderResponse{
		ID:               o.ID,
		CustomerName:     o.CustomerName,
		CustomerPhone:    o.CustomerPhone,
		CustomerLocation: o.CustomerLocation,
		ProductID:        o.ProductID,
		BoutiqueID:       o.BoutiqueID,
		Quantity:         o.Quantity,
		TotalPrice:       o.TotalPrice,
		CommissionAmount: o.CommissionAmount,
		Status:           string(o.Status),
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
	if p := o.Product; p != nil {
		resp.Product = &OrderProduct{ID: p.ID, Name: p.Name, Price: p.Price}
	}
	if b := o.Boutique; b != nil {
		resp.Boutique = &OrderBoutique{ID: b.ID, Name: b.Name, Phone: b.Phone}
	}
	return resp
}

func toOrderResponses(orders []trade.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i := range orders {
		out[i] = ToOrderResponse(&orders[i])
	}
	return out
}
