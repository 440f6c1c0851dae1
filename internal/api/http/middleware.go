package http

import (
	"net/http"
	"strings"
	"time"

	"rentalmanager-backend/internal/logger"
	"rentalmanager-backend/internal/service"
)

// staffAuth guards the staff API. Expects "Authorization: Bearer <token>".
func staffAuth(auth service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				respondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			token := strings.TrimPrefix(header, "Bearer ")
			if err := auth.ValidateToken(token); err != nil {
				respondError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.WithComponent("http").Debug("request",
			"method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
