package repositories

import (
	"context"

	"github.com/SscSPs/mtrack/internal/core/domain"
)

// RuleBatchFunc mutates the rule collection in place and reports whether anything changed.
type RuleBatchFunc func(rules []domain.AutomationRule) (changed bool, err error)

// RuleReader defines read operations for automation rules
type RuleReader interface {
	ListRules(ctx context.Context) ([]domain.AutomationRule, error)
	FindRuleByID(ctx context.Context, ruleID string) (*domain.AutomationRule, error)
}

// RuleWriter defines write operations for automation rules
type RuleWriter interface {
	AddRule(ctx context.Context, draft domain.RuleDraft) (*domain.AutomationRule, error)

	// UpdateRule replaces the rule with the same id wholesale.
	UpdateRule(ctx context.Context, rule domain.AutomationRule) (domain.MutationResult, error)

	DeleteRule(ctx context.Context, ruleID string) (domain.MutationResult, error)

	// UpdateRulesBatch runs fn against a copy of the collection while holding the store lock and
	// persists the result once if fn reports a change.
	UpdateRulesBatch(ctx context.Context, fn RuleBatchFunc) error
}

// RuleRepositoryFacade combines all rule repository interfaces
type RuleRepositoryFacade interface {
	Initializer
	RuleReader
	RuleWriter
}
