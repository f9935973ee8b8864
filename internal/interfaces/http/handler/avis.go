package handler

import (
	"github.com/gin-gonic/gin"
	feedbackapp "github.com/ivoirestore/backend/internal/application/feedback"
)

// AvisHandler handles customer reviews
type AvisHandler struct {
	BaseHandler
	avisService *feedbackapp.AvisService
}

// NewAvisHandler creates a new AvisHandler
func NewAvisHandler(base BaseHandler, avisService *feedbackapp.AvisService) *AvisHandler {
	return &AvisHandler{BaseHandler: base, avisService: avisService}
}

// Create handles POST /api/avis
func (h *AvisHandler) Create(c *gin.Context) {
	var req feedbackapp.CreateAvisRequest
	if !h.BindJSON(c, &req) {
		return
	}

	avis, err := h.avisService.Create(c.Request.Context(), req.Sanitized())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, "Merci pour votre avis !", avis)
}

// List handles GET /api/avis
func (h *AvisHandler) List(c *gin.Context) {
	page, err := h.avisService.List(c.Request.Context(), ParsePage(c, feedbackapp.DefaultListLimit))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	List(c, page)
}
