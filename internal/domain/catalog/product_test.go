package catalog

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	boutiqueID := uuid.New()

	t.Run("creates active product with valid inputs", func(t *testing.T) {
		product, err := NewProduct(boutiqueID, "Attiéké 1kg", decimal.NewFromInt(1500))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, product.ID)
		assert.Equal(t, boutiqueID, product.BoutiqueID)
		assert.Equal(t, "Attiéké 1kg", product.Name)
		assert.True(t, product.Price.Equal(decimal.NewFromInt(1500)))
		assert.True(t, product.IsActive)
		assert.Equal(t, 0, product.Stock)
		assert.NotNil(t, product.Images)
		assert.Empty(t, product.Images)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProduct(boutiqueID, "  ", decimal.NewFromInt(10))
		assert.ErrorIs(t, err, shared.NewValidationError(""))
	})

	t.Run("rejects name over 200 characters", func(t *testing.T) {
		_, err := NewProduct(boutiqueID, strings.Repeat("a", 201), decimal.NewFromInt(10))
		require.Error(t, err)
		de, ok := shared.GetDomainError(err)
		require.True(t, ok)
		assert.Equal(t, "name", de.Details[0].Field)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewProduct(boutiqueID, "Pagne", decimal.NewFromInt(-1))
		require.Error(t, err)
		de, _ := shared.GetDomainError(err)
		assert.Equal(t, "price", de.Details[0].Field)
	})

	t.Run("requires a boutique", func(t *testing.T) {
		_, err := NewProduct(uuid.Nil, "Pagne", decimal.NewFromInt(10))
		require.Error(t, err)
	})
}

func TestProduct_SetStock(t *testing.T) {
	product, err := NewProduct(uuid.New(), "Pagne", decimal.NewFromInt(10))
	require.NoError(t, err)

	require.NoError(t, product.SetStock(5))
	assert.True(t, product.HasStock(5))
	assert.False(t, product.HasStock(6))

	assert.Error(t, product.SetStock(-1))
	assert.Equal(t, 5, product.Stock)
}

func TestProduct_Deactivate(t *testing.T) {
	product, err := NewProduct(uuid.New(), "Pagne", decimal.NewFromInt(10))
	require.NoError(t, err)

	product.Deactivate()
	assert.False(t, product.IsActive)

	product.Activate()
	assert.True(t, product.IsActive)
}

func TestProduct_SetImagesCopies(t *testing.T) {
	product, err := NewProduct(uuid.New(), "Pagne", decimal.NewFromInt(10))
	require.NoError(t, err)

	images := []string{"https://cdn/a.jpg", "https://cdn/b.jpg"}
	product.SetImages(images)
	images[0] = "mutated"

	assert.Equal(t, []string{"https://cdn/a.jpg", "https://cdn/b.jpg"}, product.Images)
}

func TestProduct_CommissionRate(t *testing.T) {
	product, err := NewProduct(uuid.New(), "Pagne", decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.True(t, product.CommissionRate().IsZero())

	boutique, err := NewBoutique("Chez Awa", "0700000000", "Cocody")
	require.NoError(t, err)
	product.Boutique = boutique
	assert.True(t, product.CommissionRate().Equal(DefaultCommissionRate))
}
