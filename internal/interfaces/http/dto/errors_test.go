package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/ivoirestore/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{shared.CodeValidation, http.StatusBadRequest},
		{shared.CodeInvalidInput, http.StatusBadRequest},
		{shared.CodeNotFound, http.StatusNotFound},
		{shared.CodeInvalidID, http.StatusNotFound},
		{shared.CodeAlreadyExists, http.StatusBadRequest},
		{ErrCodeConflict, http.StatusBadRequest},
		{shared.CodeUnauthorized, http.StatusUnauthorized},
		{shared.CodeInvalidToken, http.StatusUnauthorized},
		{shared.CodeTokenExpired, http.StatusUnauthorized},
		{shared.CodeInvalidCredentials, http.StatusUnauthorized},
		{shared.CodeForbidden, http.StatusForbidden},
		{shared.CodeUpload, http.StatusBadRequest},
		{shared.CodeProductUnavailable, http.StatusBadRequest},
		{shared.CodeInsufficientStock, http.StatusBadRequest},
		{shared.CodeRateLimited, http.StatusTooManyRequests},
		{ErrCodeRequestTooLarge, http.StatusRequestEntityTooLarge},
		{ErrCodeInternal, http.StatusInternalServerError},
		// Unknown code should return 500
		{"UNKNOWN_CODE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestResponseJSONShape(t *testing.T) {
	t.Run("error omits data", func(t *testing.T) {
		raw, err := json.Marshal(NewErrorResponse(shared.CodeNotFound, "Produit introuvable."))
		require.NoError(t, err)
		assert.JSONEq(t, `{"success":false,"code":"NOT_FOUND","message":"Produit introuvable."}`, string(raw))
	})

	t.Run("validation lists fields", func(t *testing.T) {
		resp := NewValidationErrorResponse("Données invalides.", []shared.FieldError{{Field: "price", Message: "Le prix doit être un nombre positif"}})
		raw, err := json.Marshal(resp)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, false, decoded["success"])
		errs := decoded["errors"].([]any)
		require.Len(t, errs, 1)
		assert.Equal(t, "price", errs[0].(map[string]any)["field"])
	})
}

func TestNewListResponse(t *testing.T) {
	page := shared.NewPaginated([]string{"a", "b"}, 7, shared.NewPage(2, 2, 10))
	resp := NewListResponse(page)

	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, int64(7), resp.Total)
	assert.Equal(t, 4, resp.TotalPages)
	assert.Equal(t, 2, resp.CurrentPage)

	empty := NewListResponse(shared.NewPaginated[string](nil, 0, shared.NewPage(1, 10, 10)))
	raw, err := json.Marshal(empty)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"data":[]`)
}
