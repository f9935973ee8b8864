package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/ivoirestore/backend/internal/application/catalog"
	"github.com/ivoirestore/backend/internal/domain/catalog"
	"github.com/ivoirestore/backend/internal/domain/shared"
)

// BoutiqueHandler handles boutique endpoints
type BoutiqueHandler struct {
	BaseHandler
	boutiqueService *catalogapp.BoutiqueService
}

// NewBoutiqueHandler creates a new BoutiqueHandler
func NewBoutiqueHandler(base BaseHandler, boutiqueService *catalogapp.BoutiqueService) *BoutiqueHandler {
	return &BoutiqueHandler{BaseHandler: base, boutiqueService: boutiqueService}
}

// List handles GET /api/boutiques
func (h *BoutiqueHandler) List(c *gin.Context) {
	var filter catalog.BoutiqueFilter
	switch c.Query("isVerified") {
	case "true":
		verified := true
		filter.IsVerified = &verified
	case "false":
		verified := false
		filter.IsVerified = &verified
	}

	page, err := h.boutiqueService.List(c.Request.Context(), filter,
		ParsePage(c, shared.DefaultPageSize), canViewContact(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	List(c, page)
}

// Get handles GET /api/boutiques/:id
func (h *BoutiqueHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	boutique, err := h.boutiqueService.GetByID(c.Request.Context(), id, canViewContact(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, boutique)
}

// Create handles POST /api/boutiques
func (h *BoutiqueHandler) Create(c *gin.Context) {
	var req catalogapp.CreateBoutiqueRequest
	if !h.BindJSON(c, &req) {
		return
	}

	boutique, err := h.boutiqueService.Create(c.Request.Context(), req.Sanitized())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, "Boutique créée avec succès.", boutique)
}

// Update handles PUT /api/boutiques/:id
func (h *BoutiqueHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	var req catalogapp.UpdateBoutiqueRequest
	if !h.BindJSON(c, &req) {
		return
	}

	boutique, err := h.boutiqueService.Update(c.Request.Context(), id, req.Sanitized())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Boutique mise à jour avec succès.", boutique)
}

// Delete handles DELETE /api/boutiques/:id
func (h *BoutiqueHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.boutiqueService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Boutique supprimée avec succès. Les produits associés ont été désactivés.", nil)
}
