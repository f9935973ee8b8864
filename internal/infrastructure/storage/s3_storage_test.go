package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/ivoirestore/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewS3ObjectStorage_Validation(t *testing.T) {
	t.Run("nil config returns error", func(t *testing.T) {
		_, err := NewS3ObjectStorage(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration is required")
	})

	t.Run("missing bucket returns error", func(t *testing.T) {
		_, err := NewS3ObjectStorage(&config.StorageConfig{AccessKey: "k", SecretKey: "s"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bucket is required")
	})

	t.Run("missing access key returns error", func(t *testing.T) {
		_, err := NewS3ObjectStorage(&config.StorageConfig{Bucket: "b", SecretKey: "s"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "access key is required")
	})

	t.Run("missing secret key returns error", func(t *testing.T) {
		_, err := NewS3ObjectStorage(&config.StorageConfig{Bucket: "b", AccessKey: "k"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "secret key is required")
	})

	t.Run("valid config", func(t *testing.T) {
		s, err := NewS3ObjectStorage(&config.StorageConfig{
			Bucket:       "ivoirestore",
			AccessKey:    "k",
			SecretKey:    "s",
			Endpoint:     "http://localhost:9000",
			UsePathStyle: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "ivoirestore", s.Bucket())
		assert.Equal(t, "http://localhost:9000/ivoirestore/ivoirestore/products/a.jpg", s.ObjectURL("ivoirestore/products/a.jpg"))
	})
}

func TestPublicBaseURL(t *testing.T) {
	tests := []struct {
		name      string
		explicit  string
		endpoint  string
		pathStyle bool
		want      string
	}{
		{"explicit wins", "https://cdn.ivoirestore.com/", "http://minio:9000", true, "https://cdn.ivoirestore.com"},
		{"aws default", "", "", false, "https://bucket.s3.eu-west-3.amazonaws.com"},
		{"path style endpoint", "", "http://minio:9000", true, "http://minio:9000/bucket"},
		{"virtual host endpoint", "", "https://r2.example.com", false, "https://bucket.r2.example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PublicBaseURL(tt.explicit, tt.endpoint, "bucket", "eu-west-3", tt.pathStyle))
		})
	}
}

// fakeS3 records PutObject requests sent by the SDK.
type fakeS3 struct {
	mu       sync.Mutex
	paths    []string
	types    []string
	statusOK bool
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r.Method == http.MethodPut {
		f.paths = append(f.paths, r.URL.Path)
		f.types = append(f.types, r.Header.Get("Content-Type"))
	}
	if !f.statusOK {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("ETag", `"etag"`)
	w.WriteHeader(http.StatusOK)
}

func TestS3ObjectStorage_Put(t *testing.T) {
	fake := &fakeS3{statusOK: true}
	server := httptest.NewServer(fake)
	defer server.Close()

	s, err := NewS3ObjectStorage(&config.StorageConfig{
		Bucket:       "ivoirestore",
		AccessKey:    "k",
		SecretKey:    "s",
		Endpoint:     server.URL,
		UsePathStyle: true,
	})
	require.NoError(t, err)

	url, err := s.Put(context.Background(), "ivoirestore/products/a.png", strings.NewReader("png"), 3, "image/png")
	require.NoError(t, err)
	assert.Equal(t, server.URL+"/ivoirestore/ivoirestore/products/a.png", url)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.Len(t, fake.paths, 1)
	assert.Equal(t, "/ivoirestore/ivoirestore/products/a.png", fake.paths[0])
	assert.Equal(t, "image/png", fake.types[0])
}

func TestS3ObjectStorage_PutEmptyKey(t *testing.T) {
	s, err := NewS3ObjectStorage(&config.StorageConfig{Bucket: "b", AccessKey: "k", SecretKey: "s", Endpoint: "http://localhost:9000"})
	require.NoError(t, err)

	_, err = s.Put(context.Background(), "", strings.NewReader("x"), 1, "image/png")
	assert.Error(t, err)
}
