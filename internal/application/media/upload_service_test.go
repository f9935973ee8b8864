package media

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, key, body, size, contentType)
	return args.String(0), args.Error(1)
}

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func webpHeader() []byte {
	return append([]byte("RIFF\x00\x00\x00\x00WEBPVP8 "), make([]byte, 16)...)
}

func TestUploadService_StoresSniffedImage(t *testing.T) {
	store := new(mockStorage)
	store.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, FolderProducts+"/") && strings.HasSuffix(key, ".png")
	}), mock.Anything, int64(len(pngHeader)), "image/png").
		Return("https://cdn.example.com/ivoirestore/products/x.png", nil)

	var hooked int64
	svc := NewUploadService(store, zap.NewNop(), WithStoredHook(func(_ context.Context, folder string, r *UploadResult) {
		assert.Equal(t, FolderProducts, folder)
		hooked = r.Size
	}))

	result, err := svc.Upload(context.Background(), FolderProducts, bytes.NewReader(pngHeader), int64(len(pngHeader)))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/ivoirestore/products/x.png", result.URL)
	assert.Equal(t, "image/png", result.ContentType)
	assert.Equal(t, int64(len(pngHeader)), hooked)
	store.AssertExpectations(t)
}

func TestUploadService_WebP(t *testing.T) {
	store := new(mockStorage)
	store.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, "image/webp").Return("u", nil)

	result, err := NewUploadService(store, zap.NewNop()).Upload(context.Background(), FolderBoutiques, bytes.NewReader(webpHeader()), 0)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(result.Key, ".webp"))
}

func TestUploadService_Rejections(t *testing.T) {
	svc := NewUploadService(new(mockStorage), zap.NewNop())
	ctx := context.Background()

	t.Run("no body", func(t *testing.T) {
		_, err := svc.Upload(ctx, FolderProducts, nil, 0)
		assert.ErrorIs(t, err, ErrNoImage)
	})

	t.Run("empty body", func(t *testing.T) {
		_, err := svc.Upload(ctx, FolderProducts, bytes.NewReader(nil), 0)
		assert.ErrorIs(t, err, ErrNoImage)
	})

	t.Run("declared size above limit", func(t *testing.T) {
		_, err := svc.Upload(ctx, FolderProducts, bytes.NewReader(pngHeader), MaxImageSize+1)
		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("actual size above limit", func(t *testing.T) {
		big := append(append([]byte{}, pngHeader...), make([]byte, MaxImageSize)...)
		_, err := svc.Upload(ctx, FolderProducts, bytes.NewReader(big), 0)
		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("content type is sniffed, not trusted", func(t *testing.T) {
		_, err := svc.Upload(ctx, FolderProducts, strings.NewReader("<html><script>alert(1)</script></html>"), 0)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})
}

func TestUploadService_StorageFailure(t *testing.T) {
	store := new(mockStorage)
	store.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("s3 down"))

	_, err := NewUploadService(store, zap.NewNop()).Upload(context.Background(), FolderProducts, bytes.NewReader(pngHeader), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3 down")
}
