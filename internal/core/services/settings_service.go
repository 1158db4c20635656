package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/mtrack/internal/apperrors"
	"github.com/SscSPs/mtrack/internal/core/domain"
	portsrepo "github.com/SscSPs/mtrack/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mtrack/internal/core/ports/services"
)

type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepository
}

// NewSettingsService creates a new settings service.
func NewSettingsService(repo portsrepo.SettingsRepository) portssvc.SettingsSvc {
	return &settingsService{settingsRepo: repo}
}

func (s *settingsService) GetSettings(ctx context.Context) (domain.Settings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, update domain.SettingsUpdate) (domain.Settings, error) {
	if update.Currency != nil {
		c := strings.ToUpper(strings.TrimSpace(*update.Currency))
		update.Currency = &c
	}
	if err := s.ValidateStruct(update); err != nil {
		return domain.Settings{}, err
	}
	if update.Currency != nil && *update.Currency == "" {
		return domain.Settings{}, apperrors.Validationf("currency must not be empty")
	}

	settings, err := s.settingsRepo.UpdateSettings(ctx, update)
	if err != nil {
		s.LogError(ctx, err, "Failed to save settings")
		return domain.Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return settings, nil
}
