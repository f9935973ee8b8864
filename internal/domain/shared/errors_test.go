package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainError_IsMatchesByCode(t *testing.T) {
	err := NewNotFoundError("Produit introuvable.")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(fmt.Errorf("lookup: %w", err), ErrNotFound))
	assert.False(t, errors.Is(err, ErrAlreadyExists))
}

func TestGetDomainError(t *testing.T) {
	wrapped := fmt.Errorf("register: %w", NewValidationError("Données invalides.", FieldError{Field: "email", Message: "Email invalide"}))

	de, ok := GetDomainError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeValidation, de.Code)
	assert.Len(t, de.Details, 1)

	_, ok = GetDomainError(errors.New("plain"))
	assert.False(t, ok)
}

func TestParseID(t *testing.T) {
	_, err := ParseID("not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidID)

	id, err := ParseID("7d5f0d3c-5c1e-4a59-9d0d-3f1c2c9a1b2e")
	require.NoError(t, err)
	assert.Equal(t, "7d5f0d3c-5c1e-4a59-9d0d-3f1c2c9a1b2e", id.String())
}
