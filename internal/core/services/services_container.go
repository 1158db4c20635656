package services

import (
	"time"

	portsrepo "github.com/SscSPs/mtrack/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mtrack/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, now func() time.Time) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Record:     NewRecordService(repos.RecordRepo),
		Rule:       NewRuleService(repos.RuleRepo),
		Automation: NewAutomationService(repos.RuleRepo, repos.RecordRepo, WithClock(now)),
		Goal:       NewGoalService(repos.GoalRepo, repos.RecordRepo, WithGoalClock(now)),
		Settings:   NewSettingsService(repos.SettingsRepo),
		Data:       NewDataService(repos.DataRepo, repos.Initializers()),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.RecordSvcFacade = (*recordService)(nil)
	_ portssvc.RuleSvcFacade   = (*ruleService)(nil)
	_ portssvc.GoalSvcFacade   = (*goalService)(nil)
	_ portssvc.SettingsSvc     = (*settingsService)(nil)
	_ portssvc.DataSvc         = (*dataService)(nil)
)
