package http

import (
	"io"
	"net/http"
	"path/filepath"

	"rentalmanager-backend/internal/storage"
)

// ImageUploadHandler serves the mock-storage upload/download URLs. Only
// wired when the local filesystem backend is configured; with Firebase the
// browser talks to the bucket directly.
type ImageUploadHandler struct {
	mockStorage *storage.MockStorage
}

func NewImageUploadHandler(mockStorage *storage.MockStorage) *ImageUploadHandler {
	return &ImageUploadHandler{mockStorage: mockStorage}
}

// HandleUpload handles PUT requests to mock upload URLs.
func (h *ImageUploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" && contentType != "image/webp" {
		http.Error(w, "Invalid content type", http.StatusBadRequest)
		return
	}

	if err := h.mockStorage.SaveFile(key, r.Body); err != nil {
		http.Error(w, "Failed to save file", http.StatusInternalServerError)
		return
	}

	// Mimic a cloud bucket response.
	w.Header().Set("ETag", `"mock-etag-success"`)
	w.WriteHeader(http.StatusOK)
}

// HandleDownload handles GET requests to mock download URLs.
func (h *ImageUploadHandler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	file, err := h.mockStorage.ReadFile(key)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".webp":
		contentType = "image/webp"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "private, max-age=3600")
	io.Copy(w, file)
}
