package catalog

import (
	"context"
	"testing"

	"github.com/ivoirestore/backend/internal/domain/catalog"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBoutiqueService_Create(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBoutiqueRepository)
	svc := NewBoutiqueService(repo, zap.NewNop())
	repo.On("Save", ctx, mock.AnythingOfType("*catalog.Boutique")).Return(nil)

	rate := decimal.NewFromInt(15)
	resp, err := svc.Create(ctx, CreateBoutiqueRequest{
		Name:           " Koffi Mode ",
		Phone:          "0102030405",
		Address:        "Plateau",
		CommissionRate: &rate,
	})
	require.NoError(t, err)
	assert.Equal(t, "Koffi Mode", resp.Name)
	assert.False(t, resp.IsVerified)
	assert.True(t, resp.CommissionRate.Equal(rate))
	assert.Equal(t, "0102030405", resp.Phone)
}

func TestBoutiqueService_Create_DefaultsAndValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("default commission rate", func(t *testing.T) {
		repo := new(MockBoutiqueRepository)
		repo.On("Save", ctx, mock.Anything).Return(nil)
		svc := NewBoutiqueService(repo, zap.NewNop())

		resp, err := svc.Create(ctx, CreateBoutiqueRequest{Name: "A", Phone: "1", Address: "B"})
		require.NoError(t, err)
		assert.True(t, resp.CommissionRate.Equal(catalog.DefaultCommissionRate))
	})

	t.Run("rate above 100", func(t *testing.T) {
		repo := new(MockBoutiqueRepository)
		svc := NewBoutiqueService(repo, zap.NewNop())

		rate := decimal.NewFromInt(101)
		_, err := svc.Create(ctx, CreateBoutiqueRequest{Name: "A", Phone: "1", Address: "B", CommissionRate: &rate})
		de, ok := shared.GetDomainError(err)
		require.True(t, ok)
		assert.Equal(t, "commissionRate", de.Details[0].Field)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestBoutiqueService_GetByID_PhoneRedaction(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBoutiqueRepository)
	svc := NewBoutiqueService(repo, zap.NewNop())

	boutique := newTestBoutique(t)
	repo.On("FindByID", ctx, boutique.ID).Return(boutique, nil)

	public, err := svc.GetByID(ctx, boutique.ID, false)
	require.NoError(t, err)
	assert.Empty(t, public.Phone)

	admin, err := svc.GetByID(ctx, boutique.ID, true)
	require.NoError(t, err)
	assert.Equal(t, boutique.Phone, admin.Phone)
}

func TestBoutiqueService_Update(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBoutiqueRepository)
	svc := NewBoutiqueService(repo, zap.NewNop())

	boutique := newTestBoutique(t)
	repo.On("FindByID", ctx, boutique.ID).Return(boutique, nil)
	repo.On("Save", ctx, boutique).Return(nil)

	verified := true
	address := "Treichville"
	resp, err := svc.Update(ctx, boutique.ID, UpdateBoutiqueRequest{IsVerified: &verified, Address: &address})
	require.NoError(t, err)
	assert.True(t, resp.IsVerified)
	assert.Equal(t, "Treichville", resp.Address)
	assert.Equal(t, "Chez Awa", resp.Name)
}

func TestBoutiqueService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBoutiqueRepository)
	svc := NewBoutiqueService(repo, zap.NewNop())

	verified := true
	filter := catalog.BoutiqueFilter{IsVerified: &verified}
	page := shared.NewPage(1, 10, 10)
	repo.On("List", ctx, filter, page).Return([]catalog.Boutique{*newTestBoutique(t)}, int64(1), nil)

	result, err := svc.List(ctx, filter, page, false)
	require.NoError(t, err)
	require.Len(t, result.Items, 1)
	assert.Empty(t, result.Items[0].Phone)
	assert.Equal(t, 1, result.TotalPages)
}

func TestBoutiqueService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := new(MockBoutiqueRepository)
	svc := NewBoutiqueService(repo, zap.NewNop())

	boutique := newTestBoutique(t)
	repo.On("Delete", ctx, boutique.ID).Return(shared.ErrNotFound).Once()
	assert.ErrorIs(t, svc.Delete(ctx, boutique.ID), shared.ErrNotFound)
}
