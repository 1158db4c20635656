package filestore

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/SscSPs/mtrack/internal/core/domain"
	portsrepo "github.com/SscSPs/mtrack/internal/core/ports/repositories"
	"github.com/spf13/afero"
)

// JSONSettingsRepository keeps preferences in settings.json. Keys missing from the file take
// their default values.
type JSONSettingsRepository struct {
	mu       sync.Mutex
	file     jsonFile
	opts     options
	settings domain.Settings
	loaded   bool
}

func newJSONSettingsRepository(fs afero.Fs, dir string, opts ...Option) *JSONSettingsRepository {
	r := &JSONSettingsRepository{opts: buildOptions(opts)}
	r.file = jsonFile{fs: fs, path: filepath.Join(dir, SettingsFile), opts: &r.opts}
	return r
}

var _ portsrepo.SettingsRepository = (*JSONSettingsRepository)(nil)

// Initialize (re)loads settings.json, writing the defaults if it is absent.
func (r *JSONSettingsRepository) Initialize(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.load()
}

func (r *JSONSettingsRepository) load() error {
	settings := domain.DefaultSettings()
	if err := r.file.loadOrCreate(&settings, func() { settings = domain.DefaultSettings() }); err != nil {
		return err
	}
	r.settings = settings
	r.loaded = true
	return nil
}

// GetSettings returns the current preferences.
func (r *JSONSettingsRepository) GetSettings(ctx context.Context) (domain.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.loaded {
		if err := r.load(); err != nil {
			return domain.Settings{}, err
		}
	}
	return r.settings, nil
}

// UpdateSettings merges update over the stored preferences and writes them.
func (r *JSONSettingsRepository) UpdateSettings(ctx context.Context, update domain.SettingsUpdate) (domain.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return domain.Settings{}, err
	}
	if !r.loaded {
		if err := r.load(); err != nil {
			return domain.Settings{}, err
		}
	}

	next := r.settings
	update.ApplyTo(&next)
	if err := r.file.save(next); err != nil {
		return domain.Settings{}, err
	}
	r.settings = next
	return next, nil
}
