package filestore

import (
	portsrepo "github.com/SscSPs/mtrack/internal/core/ports/repositories"
	"github.com/spf13/afero"
)

// NewRepositoryProvider wires every store against the data directory dir on fs.
func NewRepositoryProvider(fs afero.Fs, dir string, opts ...Option) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RecordRepo:   newCSVRecordRepository(fs, dir, opts...),
		RuleRepo:     newJSONRuleRepository(fs, dir, opts...),
		GoalRepo:     newJSONGoalRepository(fs, dir, opts...),
		SettingsRepo: newJSONSettingsRepository(fs, dir, opts...),
		DataRepo:     newDirTransfer(fs, dir, opts...),
	}
}
