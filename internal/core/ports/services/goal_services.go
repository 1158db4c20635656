package services

import (
	"context"

	"github.com/SscSPs/mtrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GoalReaderSvc defines read operations for savings goals
type GoalReaderSvc interface {
	ListGoals(ctx context.Context) ([]domain.Goal, error)
	GetGoal(ctx context.Context, goalID string) (*domain.Goal, error)

	// GetFundsSummary returns ledger totals, the amount earmarked for goals and the liquid cash left.
	GetFundsSummary(ctx context.Context) (domain.FundsSummary, error)
}

// GoalWriterSvc defines write operations for savings goals
type GoalWriterSvc interface {
	CreateGoal(ctx context.Context, draft domain.GoalDraft) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, goalID string, update domain.GoalUpdate) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, goalID string) (domain.MutationResult, error)

	// AllocateFunds moves money into (positive delta) or out of (negative delta) a goal.
	// Positive deltas may not exceed the liquid cash available.
	AllocateFunds(ctx context.Context, goalID string, delta decimal.Decimal) (*domain.Goal, error)

	// CompleteGoalPurchase completes the goal and records the purchase as an expense.
	CompleteGoalPurchase(ctx context.Context, goalID string) (*domain.Goal, *domain.Record, error)
}

// GoalSvcFacade combines all goal-related service interfaces
type GoalSvcFacade interface {
	GoalReaderSvc
	GoalWriterSvc
}
