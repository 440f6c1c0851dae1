package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"rentalmanager-backend/internal/domain"
	"rentalmanager-backend/internal/storage"
)

const (
	uploadURLExpiry   = 15 * time.Minute
	downloadURLExpiry = 1 * time.Hour
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ImageService mediates license-image traffic between the request workflow
// and the storage backend.
type ImageService interface {
	// GetLicenseUploadURL reserves a storage key for a pending request's
	// license image and returns the key with a URL to upload it to.
	GetLicenseUploadURL(ctx context.Context, requestID int32, contentType string, fileSize int64) (string, string, error)

	// ConfirmLicenseUpload verifies the upload landed and attaches the key
	// to the request.
	ConfirmLicenseUpload(ctx context.Context, requestID int32, key string) (*domain.RentalRequest, error)

	// GetLicenseDownloadURL returns a short-lived URL for a stored image.
	GetLicenseDownloadURL(ctx context.Context, key string) (string, error)
}

type imageService struct {
	store       storage.ImageStorage
	requests    RequestService
	maxFileSize int64
}

func NewImageService(store storage.ImageStorage, requests RequestService, maxFileSizeMB int64) ImageService {
	return &imageService{
		store:       store,
		requests:    requests,
		maxFileSize: maxFileSizeMB * 1024 * 1024,
	}
}

func (s *imageService) GetLicenseUploadURL(ctx context.Context, requestID int32, contentType string, fileSize int64) (string, string, error) {
	ext, ok := allowedImageTypes[strings.ToLower(contentType)]
	if !ok {
		return "", "", fmt.Errorf("%w: unsupported content type %q", domain.ErrValidation, contentType)
	}
	if fileSize <= 0 || fileSize > s.maxFileSize {
		return "", "", fmt.Errorf("%w: file size must be between 1 byte and %d bytes", domain.ErrValidation, s.maxFileSize)
	}
	if _, err := s.requests.GetRequest(ctx, requestID); err != nil {
		return "", "", err
	}

	key := filepath.Join("requests", fmt.Sprintf("%d", requestID), uuid.New().String()+ext)
	uploadURL, err := s.store.GenerateUploadURL(ctx, key, contentType, uploadURLExpiry)
	if err != nil {
		return "", "", err
	}
	return key, uploadURL, nil
}

func (s *imageService) ConfirmLicenseUpload(ctx context.Context, requestID int32, key string) (*domain.RentalRequest, error) {
	exists, _, err := s.store.FileExists(ctx, key)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: uploaded file", domain.ErrNotFound)
	}
	return s.requests.AttachLicenseImage(ctx, requestID, key)
}

func (s *imageService) GetLicenseDownloadURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("%w: license image", domain.ErrNotFound)
	}
	return s.store.GenerateDownloadURL(ctx, key, downloadURLExpiry)
}
