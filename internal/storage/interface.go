package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"rentalmanager-backend/internal/config"
)

// ImageStorage is the backend for driver's license images. Two backends
// exist: local filesystem (development) and Firebase Storage (production).
type ImageStorage interface {
	// GenerateUploadURL returns a URL the browser can PUT the image to.
	GenerateUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error)

	// GenerateDownloadURL returns a short-lived URL serving the image.
	GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// FileExists checks if a file exists and returns its size.
	FileExists(ctx context.Context, key string) (exists bool, size int64, err error)

	// DeleteFile removes a file from storage.
	DeleteFile(ctx context.Context, key string) error

	// SaveFile and ReadFile back the local HTTP upload/download handlers.
	// The Firebase backend does not implement them; the browser talks to
	// the bucket directly through signed URLs.
	SaveFile(key string, reader io.Reader) error
	ReadFile(key string) (io.ReadCloser, error)
}

// New builds the configured storage backend.
func New(cfg config.StorageConfig) (ImageStorage, error) {
	switch cfg.Type {
	case "", "mock":
		return NewMockStorage(cfg.BaseURL, cfg.UploadDir)
	case "firebase":
		return NewFirebaseStorage(context.Background(), cfg.Bucket, cfg.CredentialsFile)
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}
