package feedback

import (
	"context"
	"errors"
	"testing"

	"github.com/ivoirestore/backend/internal/domain/feedback"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAvisRepository struct {
	mock.Mock
}

func (m *MockAvisRepository) Create(ctx context.Context, avis *feedback.Avis) error {
	return m.Called(ctx, avis).Error(0)
}

func (m *MockAvisRepository) List(ctx context.Context, page shared.Page) ([]feedback.Avis, int64, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]feedback.Avis), args.Get(1).(int64), args.Error(2)
}

func TestAvisService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("sanitizes and stores", func(t *testing.T) {
		repo := new(MockAvisRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(a *feedback.Avis) bool {
			return a.Text == "Super &lt;3"
		})).Return(nil)
		svc := NewAvisService(repo, zap.NewNop())

		resp, err := svc.Create(ctx, CreateAvisRequest{Name: " Mariam ", Text: "Super <3", Rating: 5})
		require.NoError(t, err)
		assert.Equal(t, "Mariam", resp.Name)
		assert.Equal(t, 5, resp.Rating)
		repo.AssertExpectations(t)
	})

	t.Run("invalid rating", func(t *testing.T) {
		repo := new(MockAvisRepository)
		svc := NewAvisService(repo, zap.NewNop())

		_, err := svc.Create(ctx, CreateAvisRequest{Name: "Mariam", Text: "Bien", Rating: 6})
		assert.ErrorIs(t, err, shared.NewValidationError(""))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := new(MockAvisRepository)
		repo.On("Create", ctx, mock.Anything).Return(errors.New("db down"))
		svc := NewAvisService(repo, zap.NewNop())

		_, err := svc.Create(ctx, CreateAvisRequest{Name: "Mariam", Text: "Bien", Rating: 4})
		assert.EqualError(t, err, "db down")
	})
}

func TestAvisService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAvisRepository)
	svc := NewAvisService(repo, zap.NewNop())

	avis, err := feedback.NewAvis("Mariam", "Bien", 4)
	require.NoError(t, err)
	page := shared.NewPage(0, 0, DefaultListLimit)
	repo.On("List", ctx, page).Return([]feedback.Avis{*avis}, int64(21), nil)

	result, err := svc.List(ctx, page)
	require.NoError(t, err)
	assert.Equal(t, 20, result.PageSize)
	assert.Equal(t, 2, result.TotalPages)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Bien", result.Items[0].Text)
}
