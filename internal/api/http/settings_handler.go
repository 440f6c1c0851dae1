package http

import (
	"net/http"

	"rentalmanager-backend/internal/domain"
	"rentalmanager-backend/internal/service"
)

type SettingsHandler struct {
	settings service.SettingsService
}

func NewSettingsHandler(settings service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// HandleGet GET /api/v1/settings
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.GetSettings(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

// HandleUpdate PUT /api/v1/settings
func (h *SettingsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var settings domain.Settings
	if err := decodeJSON(r, &settings); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.settings.UpdateSettings(r.Context(), &settings); err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, settings)
}
