package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/ivoirestore/backend/internal/application/catalog"
	tradeapp "github.com/ivoirestore/backend/internal/application/trade"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"github.com/ivoirestore/backend/internal/domain/trade"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	BaseHandler
	orderService *tradeapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(base BaseHandler, orderService *tradeapp.OrderService) *OrderHandler {
	return &OrderHandler{BaseHandler: base, orderService: orderService}
}

// Place handles POST /api/orders
func (h *OrderHandler) Place(c *gin.Context) {
	var req tradeapp.PlaceOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	order, err := h.orderService.Place(c.Request.Context(), req.Sanitized())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, "Commande passée avec succès. Paiement à la livraison.", order)
}

// List handles GET /api/orders
func (h *OrderHandler) List(c *gin.Context) {
	var filter trade.OrderFilter
	if raw := c.Query("status"); raw != "" {
		status, err := trade.ParseOrderStatus(raw)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		filter.Status = &status
	}
	if raw := c.Query("boutique"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.HandleError(c, catalogapp.ErrInvalidBoutiqueID)
			return
		}
		filter.BoutiqueID = &id
	}

	page, err := h.orderService.List(c.Request.Context(), filter, ParsePage(c, shared.DefaultPageSize))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	List(c, page)
}

// UpdateStatus handles PUT /api/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	var req tradeapp.UpdateStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Statut de la commande mis à jour : "+order.Status, order)
}
