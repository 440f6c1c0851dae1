package http

import (
	"net/http"
	"time"

	"rentalmanager-backend/internal/service"
)

type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// HandleLogin POST /api/v1/auth/login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, expiresAt, err := h.auth.Login(r.Context(), req.Password)
	if err != nil {
		// A wrong password reads as 401, not 400.
		respondError(w, http.StatusUnauthorized, "wrong password")
		return
	}
	respondJSON(w, http.StatusOK, loginResponse{Token: token, ExpiresAt: expiresAt})
}
