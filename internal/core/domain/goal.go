package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalStatus is the lifecycle state of a savings goal.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
)

// Goal is a savings target that liquid cash can be earmarked for.
type Goal struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	TargetAmount    decimal.Decimal `json:"targetAmount"`
	Deadline        string          `json:"deadline"`
	AllocatedAmount decimal.Decimal `json:"allocatedAmount"`
	CreatedDate     time.Time       `json:"createdDate"`
	Status          GoalStatus      `json:"status"`
}

// GoalDraft holds the caller-supplied fields of a new goal.
type GoalDraft struct {
	Name         string          `json:"name" validate:"required,max=100"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	Deadline     string          `json:"deadline" validate:"required,datetime=2006-01-02"`
}

// NewGoal builds an active goal with nothing allocated.
func NewGoal(id string, draft GoalDraft, now time.Time) Goal {
	return Goal{
		ID:              id,
		Name:            draft.Name,
		TargetAmount:    draft.TargetAmount,
		Deadline:        draft.Deadline,
		AllocatedAmount: decimal.Zero,
		CreatedDate:     NewTimestamp(now),
		Status:          GoalActive,
	}
}

// GoalUpdate carries the editable fields of a goal. Allocation and status have their own operations.
type GoalUpdate struct {
	Name         *string          `json:"name" validate:"omitempty,max=100"`
	TargetAmount *decimal.Decimal `json:"targetAmount"`
	Deadline     *string          `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
}

// ApplyTo merges u over g.
func (u GoalUpdate) ApplyTo(g *Goal) {
	if u.Name != nil {
		g.Name = *u.Name
	}
	if u.TargetAmount != nil {
		g.TargetAmount = *u.TargetAmount
	}
	if u.Deadline != nil {
		g.Deadline = *u.Deadline
	}
}

// Allocate adds delta to the allocated amount, never going below zero.
func (g *Goal) Allocate(delta decimal.Decimal) {
	g.AllocatedAmount = decimal.Max(decimal.Zero, g.AllocatedAmount.Add(delta))
}

// Complete moves an active goal to completed. It reports false if the goal was already completed.
func (g *Goal) Complete() bool {
	if g.Status == GoalCompleted {
		return false
	}
	g.Status = GoalCompleted
	return true
}

// Remaining is the amount still needed to reach the target, never negative.
func (g Goal) Remaining() decimal.Decimal {
	return decimal.Max(decimal.Zero, g.TargetAmount.Sub(g.AllocatedAmount))
}
