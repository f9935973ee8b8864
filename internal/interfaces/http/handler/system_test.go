package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ivoirestore/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func systemRouter(db Pinger) *gin.Engine {
	h := NewSystemHandler(NewBaseHandler(config.EnvTest), "1.0.0", config.EnvTest, db)
	router := gin.New()
	router.GET("/", h.Welcome)
	router.GET("/health", h.Health)
	router.NoRoute(h.NotFound)
	return router
}

func TestSystemHandler_Welcome(t *testing.T) {
	w := serve(systemRouter(stubPinger{}), http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bienvenue sur l'API IvoireStore")
	assert.Contains(t, w.Body.String(), `"version":"1.0.0"`)
	assert.Contains(t, w.Body.String(), `"environment":"test"`)
}

func TestSystemHandler_Health(t *testing.T) {
	t.Run("database up", func(t *testing.T) {
		w := serve(systemRouter(stubPinger{}), http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"database":"up"`)
	})

	t.Run("database down", func(t *testing.T) {
		w := serve(systemRouter(stubPinger{err: errors.New("dial tcp: refused")}), http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"database":"down"`)
	})
}

func TestSystemHandler_NotFound(t *testing.T) {
	w := serve(systemRouter(stubPinger{}), http.MethodDelete, "/api/unknown?x=1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Route introuvable : DELETE /api/unknown?x=1", decode(t, w).Message)
}
