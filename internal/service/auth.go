package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"rentalmanager-backend/internal/domain"
	"rentalmanager-backend/internal/logger"
	"rentalmanager-backend/internal/security"
)

type authService struct {
	tokens       security.TokenManager
	passwordHash []byte
}

// NewAuthService wires the single-password staff gate. passwordHash is a
// bcrypt hash from configuration.
func NewAuthService(tokens security.TokenManager, passwordHash string) AuthService {
	return &authService{
		tokens:       tokens,
		passwordHash: []byte(passwordHash),
	}
}

func (s *authService) Login(ctx context.Context, password string) (string, time.Time, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		logger.WithComponent("auth").Warn("failed staff login attempt")
		return "", time.Time{}, fmt.Errorf("%w: wrong password", domain.ErrValidation)
	}
	token, expiresAt, err := s.tokens.GenerateStaffToken()
	if err != nil {
		return "", time.Time{}, err
	}
	logger.WithComponent("auth").Info("staff login")
	return token, expiresAt, nil
}

func (s *authService) ValidateToken(tokenString string) error {
	_, err := s.tokens.ValidateToken(tokenString)
	return err
}
