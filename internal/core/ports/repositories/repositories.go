package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	RecordRepo   RecordRepositoryFacade
	RuleRepo     RuleRepositoryFacade
	GoalRepo     GoalRepositoryFacade
	SettingsRepo SettingsRepository
	DataRepo     DataTransfer
}

// Initializers returns every store in the order they should be prepared.
func (p RepositoryProvider) Initializers() []Initializer {
	return []Initializer{p.RecordRepo, p.SettingsRepo, p.RuleRepo, p.GoalRepo}
}
