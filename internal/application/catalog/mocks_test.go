package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/ivoirestore/backend/internal/domain/catalog"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, filter catalog.ProductFilter, page shared.Page) ([]catalog.Product, int64, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]catalog.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBoutiqueRepository is a mock implementation of BoutiqueRepository
type MockBoutiqueRepository struct {
	mock.Mock
}

func (m *MockBoutiqueRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Boutique, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Boutique), args.Error(1)
}

func (m *MockBoutiqueRepository) List(ctx context.Context, filter catalog.BoutiqueFilter, page shared.Page) ([]catalog.Boutique, int64, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]catalog.Boutique), args.Get(1).(int64), args.Error(2)
}

func (m *MockBoutiqueRepository) Save(ctx context.Context, boutique *catalog.Boutique) error {
	args := m.Called(ctx, boutique)
	return args.Error(0)
}

func (m *MockBoutiqueRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
