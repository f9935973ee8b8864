package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	identityapp "github.com/ivoirestore/backend/internal/application/identity"
	"github.com/ivoirestore/backend/internal/interfaces/http/dto"
	"github.com/ivoirestore/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles admin registration, login and profile
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(base BaseHandler, authService *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, authService: authService}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req identityapp.RegisterRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.authService.Register(c.Request.Context(), req.Sanitized())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Success: true,
		Message: "Administrateur créé avec succès.",
		Token:   result.Token,
		Admin:   result.Admin,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req identityapp.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Sanitized())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Message: "Connexion réussie.",
		Token:   result.Token,
		Admin:   result.Admin,
	})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	admin, err := h.authService.Me(c.Request.Context(), middleware.GetCaller(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AuthResponse{Success: true, Admin: admin})
}
