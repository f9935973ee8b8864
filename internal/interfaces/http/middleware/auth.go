package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ivoirestore/backend/internal/domain/identity"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"github.com/ivoirestore/backend/internal/infrastructure/logger"
	"github.com/ivoirestore/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// Auth context keys
const (
	CallerKey     = "caller"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// Authenticator resolves a bearer token to the caller owning it.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*identity.Caller, error)
}

// bearerToken extracts the token of an "Authorization: Bearer" header.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader(AuthHeaderKey)
	if !strings.HasPrefix(header, BearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix))
}

// setCaller stores the caller in the gin context and enriches the request logger.
func setCaller(c *gin.Context, caller *identity.Caller) {
	c.Set(CallerKey, caller)

	ctx := c.Request.Context()
	ctx, enriched := logger.WithAdminID(ctx, logger.FromContext(ctx), caller.ID.String())
	c.Request = c.Request.WithContext(ctx)
	c.Set("logger", enriched)
}

// Protect rejects requests without a valid bearer token.
func Protect(auth Authenticator, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortWithDomainError(c, shared.ErrUnauthorized)
			return
		}

		caller, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if de, ok := shared.GetDomainError(err); ok {
				log.Debug("Authentication rejected",
					zap.String("code", de.Code),
					zap.String("path", c.Request.URL.Path),
				)
				abortWithDomainError(c, de)
				return
			}
			log.Error("Authentication failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewErrorResponse(dto.ErrCodeInternal, "Erreur interne du serveur."))
			return
		}

		setCaller(c, caller)
		c.Next()
	}
}

// OptionalAuth attaches the caller when a valid token is present and proceeds
// anonymously otherwise.
func OptionalAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if caller, err := auth.Authenticate(c.Request.Context(), token); err == nil {
				setCaller(c, caller)
			}
		}
		c.Next()
	}
}

// RequireCapability answers 403 unless the authenticated caller holds capability.
// It must run after Protect.
func RequireCapability(capability identity.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller := GetCaller(c)
		if caller == nil {
			abortWithDomainError(c, shared.ErrUnauthorized)
			return
		}
		if !caller.Can(capability) {
			abortWithDomainError(c, shared.ErrForbidden)
			return
		}
		c.Next()
	}
}

// GetCaller returns the authenticated caller, or nil for anonymous requests.
func GetCaller(c *gin.Context) *identity.Caller {
	if v, exists := c.Get(CallerKey); exists {
		if caller, ok := v.(*identity.Caller); ok {
			return caller
		}
	}
	return nil
}

func abortWithDomainError(c *gin.Context, err *shared.DomainError) {
	c.AbortWithStatusJSON(dto.GetHTTPStatus(err.Code), dto.NewErrorResponse(err.Code, err.Message))
}
