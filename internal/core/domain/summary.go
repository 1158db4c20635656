package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AutomationReport summarises one pass of the automation engine.
type AutomationReport struct {
	RanAt       time.Time `json:"ranAt"`
	Fired       int       `json:"fired"`
	Deactivated int       `json:"deactivated"`
	Failed      int       `json:"failed"`
}

// FundsSummary is the cash position the goals screen works from.
type FundsSummary struct {
	TotalIncome     decimal.Decimal `json:"totalIncome"`
	TotalExpense    decimal.Decimal `json:"totalExpense"`
	TotalInvestment decimal.Decimal `json:"totalInvestment"`
	TotalAllocated  decimal.Decimal `json:"totalAllocated"`
	LiquidCash      decimal.Decimal `json:"liquidCash"`
}
