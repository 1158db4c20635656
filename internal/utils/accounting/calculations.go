package accounting

import (
	"fmt"

	"github.com/SscSPs/mtrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SumAmounts adds up the amounts of the given records.
func SumAmounts(records []domain.Record) decimal.Decimal {
	sum := decimal.Zero
	for _, rec := range records {
		sum = sum.Add(rec.Amount)
	}
	return sum
}

// LiquidCash is income minus expenses, investments and goal allocations, never below zero.
func LiquidCash(income, expense, investment, allocated decimal.Decimal) decimal.Decimal {
	cash := income.Sub(expense).Sub(investment).Sub(allocated)
	return decimal.Max(decimal.Zero, cash)
}

// Summarize builds the funds summary from the three ledgers and the total allocated to goals.
func Summarize(ledgers map[domain.LedgerType][]domain.Record, allocated decimal.Decimal) domain.FundsSummary {
	s := domain.FundsSummary{
		TotalIncome:     SumAmounts(ledgers[domain.LedgerIncome]),
		TotalExpense:    SumAmounts(ledgers[domain.LedgerExpense]),
		TotalInvestment: SumAmounts(ledgers[domain.LedgerInvestment]),
		TotalAllocated:  allocated,
	}
	s.LiquidCash = LiquidCash(s.TotalIncome, s.TotalExpense, s.TotalInvestment, s.TotalAllocated)
	return s
}

// ValidateAmount checks that an amount is usable for a record, rule or goal.
func ValidateAmount(amount decimal.Decimal, allowZero bool) error {
	if amount.IsNegative() {
		return fmt.Errorf("amount must not be negative, got %s", amount.String())
	}
	if !allowZero && amount.IsZero() {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}
