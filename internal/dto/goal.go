package dto

import (
	"time"

	"github.com/SscSPs/mtrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a savings goal.
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	Deadline     string          `json:"deadline" binding:"required"`
}

// ToDraft converts the request into a domain draft.
func (r CreateGoalRequest) ToDraft() domain.GoalDraft {
	return domain.GoalDraft{Name: r.Name, TargetAmount: r.TargetAmount, Deadline: r.Deadline}
}

// UpdateGoalRequest defines the editable fields of a goal.
type UpdateGoalRequest struct {
	Name         *string          `json:"name"`
	TargetAmount *decimal.Decimal `json:"targetAmount"`
	Deadline     *string          `json:"deadline"`
}

// ToUpdate converts the request into a domain update.
func (r UpdateGoalRequest) ToUpdate() domain.GoalUpdate {
	return domain.GoalUpdate{Name: r.Name, TargetAmount: r.TargetAmount, Deadline: r.Deadline}
}

// AllocateFundsRequest moves money into (positive) or out of (negative) a goal.
type AllocateFundsRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// GoalResponse defines the data returned for a goal.
type GoalResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	TargetAmount    decimal.Decimal   `json:"targetAmount"`
	Deadline        string            `json:"deadline"`
	AllocatedAmount decimal.Decimal   `json:"allocatedAmount"`
	Remaining       decimal.Decimal   `json:"remaining"`
	CreatedDate     time.Time         `json:"createdDate"`
	Status          domain.GoalStatus `json:"status"`
}

// ToGoalResponse converts a domain.Goal to GoalResponse DTO
func ToGoalResponse(g *domain.Goal) GoalResponse {
	return GoalResponse{
		ID:              g.ID,
		Name:            g.Name,
		TargetAmount:    g.TargetAmount,
		Deadline:        g.Deadline,
		AllocatedAmount: g.AllocatedAmount,
		Remaining:       g.Remaining(),
		CreatedDate:     g.CreatedDate,
		Status:          g.Status,
	}
}

// ToListGoalResponse converts goals to DTOs.
func ToListGoalResponse(goals []domain.Goal) []GoalResponse {
	res := make([]GoalResponse, len(goals))
	for i := range goals {
		res[i] = ToGoalResponse(&goals[i])
	}
	return res
}

// CompleteGoalResponse returns the completed goal and the expense booked for it.
type CompleteGoalResponse struct {
	Goal    GoalResponse   `json:"goal"`
	Expense RecordResponse `json:"expense"`
}

// FundsSummaryResponse defines the totals used by the goals screen.
type FundsSummaryResponse struct {
	TotalIncome     decimal.Decimal `json:"totalIncome"`
	TotalExpense    decimal.Decimal `json:"totalExpense"`
	TotalInvestment decimal.Decimal `json:"totalInvestment"`
	TotalAllocated  decimal.Decimal `json:"totalAllocated"`
	LiquidCash      decimal.Decimal `json:"liquidCash"`
}

// ToFundsSummaryResponse converts a domain.FundsSummary.
func ToFundsSummaryResponse(s domain.FundsSummary) FundsSummaryResponse {
	return FundsSummaryResponse{
		TotalIncome:     s.TotalIncome,
		TotalExpense:    s.TotalExpense,
		TotalInvestment: s.TotalInvestment,
		TotalAllocated:  s.TotalAllocated,
		LiquidCash:      s.LiquidCash,
	}
}
