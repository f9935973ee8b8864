package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ivoirestore/backend/internal/infrastructure/logger"
	"github.com/ivoirestore/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// healthTimeout bounds the database ping of the health check.
const healthTimeout = 2 * time.Second

// Pinger checks a backing dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler serves the welcome, health and fallback routes
type SystemHandler struct {
	BaseHandler
	version   string
	env       string
	db        Pinger
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(base BaseHandler, version, env string, db Pinger) *SystemHandler {
	return &SystemHandler{
		BaseHandler: base,
		version:     version,
		env:         env,
		db:          db,
		startTime:   time.Now(),
	}
}

// WelcomeResponse is served on GET /
type WelcomeResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
	Timestamp   string `json:"timestamp"`
}

// Welcome handles GET /
func (h *SystemHandler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, WelcomeResponse{
		Success:     true,
		Message:     "🛒 Bienvenue sur l'API IvoireStore - Marketplace Multi-Boutiques",
		Version:     h.version,
		Environment: h.env,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthResponse reports service and database state
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Uptime   string `json:"uptime"`
}

// Health handles GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:   "ok",
		Database: "up",
		Uptime:   time.Since(h.startTime).Round(time.Second).String(),
	}
	if err := h.db.Ping(ctx); err != nil {
		logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
		resp.Status = "degraded"
		resp.Database = "down"
		c.JSON(http.StatusServiceUnavailable, dto.Response{Success: false, Message: "Base de données indisponible.", Data: resp})
		return
	}
	h.Success(c, resp)
}

// NotFound answers every unmatched route
func (h *SystemHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.Response{
		Success: false,
		Message: "Route introuvable : " + c.Request.Method + " " + c.Request.URL.RequestURI(),
	})
}
