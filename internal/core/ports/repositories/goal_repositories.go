package repositories

import (
	"context"

	"github.com/SscSPs/mtrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GoalReader defines read operations for savings goals
type GoalReader interface {
	ListGoals(ctx context.Context) ([]domain.Goal, error)
	FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)

	// TotalAllocated sums the allocated amount of active goals.
	TotalAllocated(ctx context.Context) (decimal.Decimal, error)
}

// GoalWriter defines write operations for savings goals.
// Mutators return the goal as persisted, or nil with MutationNotFound.
type GoalWriter interface {
	AddGoal(ctx context.Context, draft domain.GoalDraft) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, goalID string, update domain.GoalUpdate) (*domain.Goal, domain.MutationResult, error)
	DeleteGoal(ctx context.Context, goalID string) (domain.MutationResult, error)

	// AllocateFunds adds delta (possibly negative) to the allocation, clamped at zero.
	// It does not check available funds.
	AllocateFunds(ctx context.Context, goalID string, delta decimal.Decimal) (*domain.Goal, domain.MutationResult, error)

	// CompleteGoal marks an active goal completed. Completed goals report MutationUnchanged.
	CompleteGoal(ctx context.Context, goalID string) (*domain.Goal, domain.MutationResult, error)
}

// GoalRepositoryFacade combines all goal repository interfaces
type GoalRepositoryFacade interface {
	Initializer
	GoalReader
	GoalWriter
}
