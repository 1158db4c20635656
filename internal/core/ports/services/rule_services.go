package services

import (
	"context"

	"github.com/SscSPs/mtrack/internal/core/domain"
)

// RuleReaderSvc defines read operations for automation rules
type RuleReaderSvc interface {
	ListRules(ctx context.Context) ([]domain.AutomationRule, error)
	GetRule(ctx context.Context, ruleID string) (*domain.AutomationRule, error)
}

// RuleWriterSvc defines write operations for automation rules
type RuleWriterSvc interface {
	CreateRule(ctx context.Context, draft domain.RuleDraft) (*domain.AutomationRule, error)

	// UpdateRule replaces a rule. A nil LastRunDate keeps the stored cursor.
	UpdateRule(ctx context.Context, rule domain.AutomationRule) (*domain.AutomationRule, error)

	DeleteRule(ctx context.Context, ruleID string) (domain.MutationResult, error)
}

// RuleSvcFacade combines all rule-related service interfaces
type RuleSvcFacade interface {
	RuleReaderSvc
	RuleWriterSvc
}

// AutomationSvc runs the recurring rules against the ledgers.
type AutomationSvc interface {
	RunAutomation(ctx context.Context) (domain.AutomationReport, error)
}
