package service

import (
	"context"

	"rentalmanager-backend/internal/domain"
	"rentalmanager-backend/internal/repository"
)

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(settingsRepo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	return s.settingsRepo.Get(ctx)
}

func (s *settingsService) UpdateSettings(ctx context.Context, settings *domain.Settings) error {
	if settings.BankAccount == "" {
		return domain.ErrValidation
	}
	return s.settingsRepo.Update(ctx, settings)
}
