package repositories

import (
	"context"

	"github.com/SscSPs/mtrack/internal/core/domain"
)

// SettingsRepository stores the preferences document.
type SettingsRepository interface {
	Initializer
	GetSettings(ctx context.Context) (domain.Settings, error)
	UpdateSettings(ctx context.Context, update domain.SettingsUpdate) (domain.Settings, error)
}
