package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// MockStorage keeps license images on the local filesystem and hands out
// URLs pointing back at the server's upload/download handlers. For demo and
// development without a cloud bucket.
type MockStorage struct {
	baseURL    string // server URL, e.g. "http://localhost:8080"
	licenseDir string
}

func NewMockStorage(baseURL, uploadDir string) (*MockStorage, error) {
	licenseDir := filepath.Join(uploadDir, "licenses")
	if err := os.MkdirAll(licenseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create licenses directory: %w", err)
	}
	return &MockStorage{
		baseURL:    baseURL,
		licenseDir: licenseDir,
	}, nil
}

// GenerateUploadURL returns a URL pointing at the server's own upload
// handler. The key rides in the query so the handler knows where to save.
func (m *MockStorage) GenerateUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error) {
	uploadToken := uuid.New().String()
	return fmt.Sprintf("%s/api/v1/upload/%s?key=%s", m.baseURL, uploadToken, key), nil
}

func (m *MockStorage) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	return fmt.Sprintf("%s/api/v1/download?key=%s", m.baseURL, key), nil
}

func (m *MockStorage) FileExists(ctx context.Context, key string) (bool, int64, error) {
	info, err := os.Stat(filepath.Join(m.licenseDir, key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}

func (m *MockStorage) DeleteFile(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(m.licenseDir, key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (m *MockStorage) SaveFile(key string, reader io.Reader) error {
	fullPath := filepath.Join(m.licenseDir, key)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (m *MockStorage) ReadFile(key string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(m.licenseDir, key))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}
