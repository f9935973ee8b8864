// Package media stores images uploaded by admins for products and boutiques.
package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Upload folders
const (
	FolderProducts  = "ivoirestore/products"
	FolderBoutiques = "ivoirestore/boutiques"
)

// MaxImageSize is the largest accepted image, in bytes.
const MaxImageSize int64 = 5 << 20

// sniffLen is how many leading bytes http.DetectContentType looks at.
const sniffLen = 512

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Upload errors
var (
	ErrNoImage         = shared.NewDomainError(shared.CodeUpload, "Aucune image fournie.")
	ErrUnsupportedType = shared.NewDomainError(shared.CodeUpload, "Type de fichier non autorisé. Formats acceptés : JPEG, PNG, WebP.")
	ErrTooLarge        = shared.NewDomainError(shared.CodeUpload, "Le fichier est trop volumineux. Taille maximale : 5 MB.")
)

// ObjectStorage writes objects and returns their public URL.
type ObjectStorage interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

// UploadResult describes a stored image.
type UploadResult struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// UploadService validates and stores images.
type UploadService struct {
	storage ObjectStorage
	logger  *zap.Logger
	onStore func(ctx context.Context, folder string, result *UploadResult)
}

// UploadServiceOption configures an UploadService
type UploadServiceOption func(*UploadService)

// WithStoredHook registers a callback run after each successful upload.
func WithStoredHook(fn func(ctx context.Context, folder string, result *UploadResult)) UploadServiceOption {
	return func(s *UploadService) {
		s.onStore = fn
	}
}

// NewUploadService creates a new UploadService
func NewUploadService(storage ObjectStorage, logger *zap.Logger, opts ...UploadServiceOption) *UploadService {
	s := &UploadService{storage: storage, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upload checks size and sniffed content type, then stores the image under folder.
// declaredSize is the size announced by the client (0 when unknown); the body is
// measured regardless.
func (s *UploadService) Upload(ctx context.Context, folder string, body io.Reader, declaredSize int64) (*UploadResult, error) {
	if body == nil {
		return nil, ErrNoImage
	}
	if declaredSize > MaxImageSize {
		return nil, ErrTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(body, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNoImage
	}
	if int64(len(data)) > MaxImageSize {
		return nil, ErrTooLarge
	}

	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	contentType := http.DetectContentType(head)
	ext, ok := allowedTypes[contentType]
	if !ok {
		return nil, ErrUnsupportedType
	}

	key := folder + "/" + uuid.NewString() + ext
	url, err := s.storage.Put(ctx, key, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		s.logger.Error("Image upload failed", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("store image: %w", err)
	}

	s.logger.Info("Image uploaded",
		zap.String("key", key),
		zap.String("content_type", contentType),
		zap.Int("size", len(data)),
	)
	result := &UploadResult{
		URL:         url,
		Key:         key,
		ContentType: contentType,
		Size:        int64(len(data)),
	}
	if s.onStore != nil {
		s.onStore(ctx, folder, result)
	}
	return result, nil
}
