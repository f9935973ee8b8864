package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/ivoirestore/backend/internal/domain/catalog"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestBoutique(t *testing.T) *catalog.Boutique {
	t.Helper()
	b, err := catalog.NewBoutique("Chez Awa", "+225 07 00 00 00", "Cocody, Abidjan")
	require.NoError(t, err)
	return b
}

func newTestProduct(t *testing.T, b *catalog.Boutique, stock int) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(b.ID, "Pagne wax", decimal.NewFromInt(15000))
	require.NoError(t, err)
	require.NoError(t, p.SetStock(stock))
	p.Boutique = b
	return p
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates product in existing boutique", func(t *testing.T) {
		products := new(MockProductRepository)
		boutiques := new(MockBoutiqueRepository)
		svc := NewProductService(products, boutiques, zap.NewNop())

		boutique := newTestBoutique(t)
		boutiques.On("FindByID", ctx, boutique.ID).Return(boutique, nil)
		products.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		price := decimal.NewFromInt(15000)
		stock := 5
		resp, err := svc.Create(ctx, CreateProductRequest{
			Name:     "  Pagne <wax>  ",
			Price:    &price,
			Boutique: boutique.ID.String(),
			Stock:    &stock,
		})
		require.NoError(t, err)
		assert.Equal(t, "Pagne &lt;wax>", resp.Name)
		assert.Equal(t, 5, resp.Stock)
		assert.True(t, resp.IsActive)
		assert.Equal(t, []string{}, resp.Images)
		require.NotNil(t, resp.Boutique)
		assert.Equal(t, boutique.Phone, resp.Boutique.Phone)
		products.AssertExpectations(t)
	})

	t.Run("unknown boutique", func(t *testing.T) {
		products := new(MockProductRepository)
		boutiques := new(MockBoutiqueRepository)
		svc := NewProductService(products, boutiques, zap.NewNop())

		id := uuid.New()
		boutiques.On("FindByID", ctx, id).Return(nil, shared.NewNotFoundError("Boutique introuvable."))

		price := decimal.NewFromInt(100)
		_, err := svc.Create(ctx, CreateProductRequest{Name: "Sac", Price: &price, Boutique: id.String()})
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Equal(t, "Boutique introuvable. Vérifiez l'ID de la boutique.", err.Error())
		products.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("malformed boutique id", func(t *testing.T) {
		svc := NewProductService(new(MockProductRepository), new(MockBoutiqueRepository), zap.NewNop())

		price := decimal.NewFromInt(100)
		_, err := svc.Create(ctx, CreateProductRequest{Name: "Sac", Price: &price, Boutique: "not-an-id"})
		de, ok := shared.GetDomainError(err)
		require.True(t, ok)
		assert.Equal(t, shared.CodeValidation, de.Code)
		assert.Equal(t, "boutique", de.Details[0].Field)
	})

	t.Run("negative price", func(t *testing.T) {
		products := new(MockProductRepository)
		boutiques := new(MockBoutiqueRepository)
		svc := NewProductService(products, boutiques, zap.NewNop())

		boutique := newTestBoutique(t)
		boutiques.On("FindByID", ctx, boutique.ID).Return(boutique, nil)

		price := decimal.NewFromInt(-1)
		_, err := svc.Create(ctx, CreateProductRequest{Name: "Sac", Price: &price, Boutique: boutique.ID.String()})
		assert.ErrorIs(t, err, shared.NewValidationError(""))
	})
}

func TestProductService_GetByID_PhoneRedaction(t *testing.T) {
	ctx := context.Background()
	products := new(MockProductRepository)
	svc := NewProductService(products, new(MockBoutiqueRepository), zap.NewNop())

	boutique := newTestBoutique(t)
	product := newTestProduct(t, boutique, 3)
	products.On("FindByID", ctx, product.ID).Return(product, nil)

	anonymous, err := svc.GetByID(ctx, product.ID, false)
	require.NoError(t, err)
	require.NotNil(t, anonymous.Boutique)
	assert.Empty(t, anonymous.Boutique.Phone)
	assert.Equal(t, "Cocody, Abidjan", anonymous.Boutique.Address)

	admin, err := svc.GetByID(ctx, product.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "+225 07 00 00 00", admin.Boutique.Phone)
}

func TestProductService_List(t *testing.T) {
	ctx := context.Background()
	products := new(MockProductRepository)
	svc := NewProductService(products, new(MockBoutiqueRepository), zap.NewNop())

	boutique := newTestBoutique(t)
	items := []catalog.Product{*newTestProduct(t, boutique, 1), *newTestProduct(t, boutique, 2)}
	filter := catalog.ProductFilter{Search: "wax"}
	page := shared.NewPage(2, 2, 10)
	products.On("List", ctx, filter, page).Return(items, int64(5), nil)

	result, err := svc.List(ctx, filter, page, false)
	require.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(5), result.Total)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, 2, result.Page)
	for _, item := range result.Items {
		assert.Empty(t, item.Boutique.Phone)
	}
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("changes only present fields", func(t *testing.T) {
		products := new(MockProductRepository)
		svc := NewProductService(products, new(MockBoutiqueRepository), zap.NewNop())

		boutique := newTestBoutique(t)
		product := newTestProduct(t, boutique, 3)
		products.On("FindByID", ctx, product.ID).Return(product, nil)
		products.On("Save", ctx, product).Return(nil)

		stock := 10
		resp, err := svc.Update(ctx, product.ID, UpdateProductRequest{Stock: &stock})
		require.NoError(t, err)
		assert.Equal(t, 10, resp.Stock)
		assert.Equal(t, "Pagne wax", resp.Name)
		assert.True(t, resp.Price.Equal(decimal.NewFromInt(15000)))
	})

	t.Run("present fields are validated", func(t *testing.T) {
		products := new(MockProductRepository)
		svc := NewProductService(products, new(MockBoutiqueRepository), zap.NewNop())

		boutique := newTestBoutique(t)
		product := newTestProduct(t, boutique, 3)
		products.On("FindByID", ctx, product.ID).Return(product, nil)

		empty := "   "
		_, err := svc.Update(ctx, product.ID, UpdateProductRequest{Name: &empty})
		assert.ErrorIs(t, err, shared.NewValidationError(""))
		products.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("reactivation requires the boutique", func(t *testing.T) {
		products := new(MockProductRepository)
		boutiques := new(MockBoutiqueRepository)
		svc := NewProductService(products, boutiques, zap.NewNop())

		boutique := newTestBoutique(t)
		product := newTestProduct(t, boutique, 3)
		product.Deactivate()
		product.Boutique = nil
		products.On("FindByID", ctx, product.ID).Return(product, nil)
		boutiques.On("FindByID", ctx, boutique.ID).Return(nil, shared.ErrNotFound)

		active := true
		_, err := svc.Update(ctx, product.ID, UpdateProductRequest{IsActive: &active})
		assert.Equal(t, ErrBoutiqueNotFound, err)
		assert.False(t, product.IsActive)
		products.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("reactivates product of existing boutique", func(t *testing.T) {
		products := new(MockProductRepository)
		boutiques := new(MockBoutiqueRepository)
		svc := NewProductService(products, boutiques, zap.NewNop())

		boutique := newTestBoutique(t)
		product := newTestProduct(t, boutique, 3)
		product.Deactivate()
		products.On("FindByID", ctx, product.ID).Return(product, nil)
		boutiques.On("FindByID", ctx, boutique.ID).Return(boutique, nil)
		products.On("Save", ctx, product).Return(nil)

		active := true
		resp, err := svc.Update(ctx, product.ID, UpdateProductRequest{IsActive: &active})
		require.NoError(t, err)
		assert.True(t, resp.IsActive)
	})

	t.Run("moving to unknown boutique", func(t *testing.T) {
		products := new(MockProductRepository)
		boutiques := new(MockBoutiqueRepository)
		svc := NewProductService(products, boutiques, zap.NewNop())

		boutique := newTestBoutique(t)
		product := newTestProduct(t, boutique, 3)
		products.On("FindByID", ctx, product.ID).Return(product, nil)
		target := uuid.New()
		boutiques.On("FindByID", ctx, target).Return(nil, shared.ErrNotFound)

		raw := target.String()
		_, err := svc.Update(ctx, product.ID, UpdateProductRequest{Boutique: &raw})
		assert.Equal(t, ErrBoutiqueNotFound, err)
	})
}
