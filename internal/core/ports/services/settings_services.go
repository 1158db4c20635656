package services

import (
	"context"

	"github.com/SscSPs/mtrack/internal/core/domain"
)

// SettingsSvc reads and changes the user's preferences.
type SettingsSvc interface {
	GetSettings(ctx context.Context) (domain.Settings, error)
	UpdateSettings(ctx context.Context, update domain.SettingsUpdate) (domain.Settings, error)
}

// DataSvc moves the whole data set in and out of the data directory.
type DataSvc interface {
	Export(ctx context.Context, destDir string) ([]string, error)

	// Import replaces the data files and reloads every store.
	Import(ctx context.Context, srcDir string) ([]string, error)
}
