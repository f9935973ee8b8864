package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"github.com/ivoirestore/backend/internal/infrastructure/cache"
	"github.com/ivoirestore/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// Rate limit messages
const (
	MessageGlobalRateLimited = "Trop de requêtes depuis cette adresse IP. Réessayez dans 15 minutes."
	MessageAuthRateLimited   = "Trop de tentatives de connexion. Réessayez dans 1 heure."
)

// RateLimitConfig configures one fixed-window limiter.
type RateLimitConfig struct {
	// Name prefixes the counter key so several limiters can share a counter.
	Name    string
	Counter cache.WindowCounter
	Limit   int
	Window  time.Duration
	Message string
	Logger  *zap.Logger
	// KeyFunc derives the client key; defaults to the client IP.
	KeyFunc func(c *gin.Context) string
	now     func() time.Time
}

// RateLimit limits requests per client within a fixed window. Counter failures let
// the request through and are logged as warnings.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.now == nil {
		cfg.now = time.Now
	}
	limit := strconv.Itoa(cfg.Limit)

	return func(c *gin.Context) {
		key := cfg.Name + ":" + cfg.KeyFunc(c)
		count, resetAt, err := cfg.Counter.Hit(c.Request.Context(), key, cfg.Window)
		if err != nil {
			cfg.Logger.Warn("Rate limit counter unavailable, allowing request",
				zap.String("limiter", cfg.Name),
				zap.Error(err),
			)
			c.Next()
			return
		}

		remaining := int64(cfg.Limit) - count
		if remaining < 0 {
			remaining = 0
		}
		reset := int64(math.Ceil(resetAt.Sub(cfg.now()).Seconds()))
		if reset < 0 {
			reset = 0
		}

		h := c.Writer.Header()
		h.Set("RateLimit-Limit", limit)
		h.Set("RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		h.Set("RateLimit-Reset", strconv.FormatInt(reset, 10))

		if count > int64(cfg.Limit) {
			h.Set("Retry-After", strconv.FormatInt(reset, 10))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewErrorResponse(shared.CodeRateLimited, cfg.Message))
			return
		}

		c.Next()
	}
}
