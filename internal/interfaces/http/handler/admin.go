package handler

import (
	"github.com/gin-gonic/gin"
	identityapp "github.com/ivoirestore/backend/internal/application/identity"
	reportapp "github.com/ivoirestore/backend/internal/application/report"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"github.com/ivoirestore/backend/internal/infrastructure/logger"
	"github.com/ivoirestore/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// AdminHandler serves the back-office dashboard
type AdminHandler struct {
	BaseHandler
	statsService *reportapp.StatsService
	adminService *identityapp.AdminService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(base BaseHandler, statsService *reportapp.StatsService, adminService *identityapp.AdminService) *AdminHandler {
	return &AdminHandler{BaseHandler: base, statsService: statsService, adminService: adminService}
}

// Stats handles GET /api/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.statsService.Dashboard(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if caller := middleware.GetCaller(c); caller != nil {
		logger.GetGinLogger(c).Info("Admin stats viewed", zap.String("email", caller.Email))
	}
	h.Success(c, stats)
}

// Admins handles GET /api/admin/admins
func (h *AdminHandler) Admins(c *gin.Context) {
	page, err := h.adminService.List(c.Request.Context(), ParsePage(c, shared.DefaultPageSize))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	List(c, page)
}
