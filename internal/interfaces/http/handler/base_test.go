package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"github.com/ivoirestore/backend/internal/infrastructure/config"
	"github.com/ivoirestore/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Code    string              `json:"code"`
	Errors  []shared.FieldError `json:"errors"`
	Stack   string              `json:"stack"`
	Data    json.RawMessage     `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func errorRouter(env string, err error) *gin.Engine {
	h := NewBaseHandler(env)
	router := gin.New()
	router.GET("/test", func(c *gin.Context) {
		h.HandleError(c, err)
	})
	return router
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleError_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", shared.NewNotFoundError("Produit introuvable."), http.StatusNotFound},
		{"invalid id", shared.ErrInvalidID, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", shared.NewNotFoundError("Commande introuvable.")), http.StatusNotFound},
		{"conflict", shared.NewDomainError(shared.CodeAlreadyExists, "Un administrateur avec cet email existe déjà."), http.StatusBadRequest},
		{"stock", shared.NewDomainError(shared.CodeInsufficientStock, "Stock insuffisant. Stock disponible : 2"), http.StatusBadRequest},
		{"credentials", shared.NewDomainError(shared.CodeInvalidCredentials, "Email ou mot de passe incorrect."), http.StatusUnauthorized},
		{"forbidden", shared.ErrForbidden, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(errorRouter(config.EnvProduction, tt.err), http.MethodGet, "/test", "")
			assert.Equal(t, tt.wantStatus, w.Code)

			env := decode(t, w)
			assert.False(t, env.Success)
			assert.Equal(t, tt.err.Error(), env.Message)
		})
	}
}

func TestHandleError_ValidationDetails(t *testing.T) {
	err := shared.NewValidationError("Statut invalide",
		shared.FieldError{Field: "status", Message: "Statut invalide. Valeurs: pending, transmitted, delivered, commission_paid"})

	w := serve(errorRouter(config.EnvProduction, err), http.MethodGet, "/test", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env := decode(t, w)
	assert.Equal(t, shared.CodeValidation, env.Code)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "status", env.Errors[0].Field)
}

func TestHandleError_UnexpectedErrors(t *testing.T) {
	boom := errors.New("pq: connection refused")

	t.Run("production hides the message", func(t *testing.T) {
		w := serve(errorRouter(config.EnvProduction, boom), http.MethodGet, "/test", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)

		env := decode(t, w)
		assert.Equal(t, MessageInternalError, env.Message)
		assert.Empty(t, env.Stack)
	})

	t.Run("test shows the message without stack", func(t *testing.T) {
		env := decode(t, serve(errorRouter(config.EnvTest, boom), http.MethodGet, "/test", ""))
		assert.Equal(t, "pq: connection refused", env.Message)
		assert.Empty(t, env.Stack)
	})

	t.Run("development adds the stack", func(t *testing.T) {
		env := decode(t, serve(errorRouter(config.EnvDevelopment, boom), http.MethodGet, "/test", ""))
		assert.Equal(t, "pq: connection refused", env.Message)
		assert.Contains(t, env.Stack, "goroutine")
	})
}

type bindTarget struct {
	Name     string `json:"name" binding:"required"`
	Quantity *int   `json:"quantity" binding:"omitempty,min=1"`
}

func bindRouter() *gin.Engine {
	h := NewBaseHandler(config.EnvTest)
	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		var in bindTarget
		if !h.BindJSON(c, &in) {
			return
		}
		h.Success(c, in.Name)
	})
	return router
}

func TestBindJSON(t *testing.T) {
	router := bindRouter()

	t.Run("valid body", func(t *testing.T) {
		w := serve(router, http.MethodPost, "/test", `{"name":"Awa"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("validation failure lists fields", func(t *testing.T) {
		w := serve(router, http.MethodPost, "/test", `{"quantity":0}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		env := decode(t, w)
		assert.Equal(t, middleware.MessageInvalidData, env.Message)
		assert.Len(t, env.Errors, 2)
	})

	t.Run("wrong type names the field", func(t *testing.T) {
		w := serve(router, http.MethodPost, "/test", `{"name":"Awa","quantity":"two"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		env := decode(t, w)
		require.Len(t, env.Errors, 1)
		assert.Equal(t, "quantity", env.Errors[0].Field)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		w := serve(router, http.MethodPost, "/test", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_JSON", decode(t, w).Code)
	})
}

func TestParseID(t *testing.T) {
	h := NewBaseHandler(config.EnvTest)
	router := gin.New()
	router.GET("/items/:id", func(c *gin.Context) {
		id, ok := h.ParseID(c, "id")
		if !ok {
			return
		}
		c.String(http.StatusOK, id.String())
	})

	id := uuid.New()
	w := serve(router, http.MethodGet, "/items/"+id.String(), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id.String(), w.Body.String())

	w = serve(router, http.MethodGet, "/items/not-an-id", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Ressource introuvable. L'identifiant fourni est invalide.", decode(t, w).Message)
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"", 1, 10},
		{"?page=3&limit=5", 3, 5},
		{"?page=abc&limit=-2", 1, 10},
		{"?page=0&limit=1000", 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)

			page := ParsePage(c, shared.DefaultPageSize)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantLimit, page.Limit)
		})
	}
}
