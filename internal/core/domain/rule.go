package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is how often an automation rule fires.
type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// MaxDayOfMonth is the latest configurable firing day; every month has it.
const MaxDayOfMonth = 28

// automatedPrefix is prepended to the description of materialised records.
const automatedPrefix = "Automated: "

// PeriodMonths returns the period length in months, or 0 for an unknown frequency.
func (f Frequency) PeriodMonths() int {
	switch f {
	case FrequencyMonthly:
		return 1
	case FrequencyQuarterly:
		return 3
	case FrequencyYearly:
		return 12
	}
	return 0
}

// PeriodIndex returns a monotonic index of the period containing t, for periods of the given
// length in months aligned on January. With months=1 this orders like year*12+month.
func PeriodIndex(t time.Time, months int) int {
	return (t.Year()*12 + int(t.Month()) - 1) / months
}

// AutomationRule is a recurring-transaction template with a last-run cursor.
type AutomationRule struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Type        LedgerType      `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Frequency   Frequency       `json:"frequency"`
	DayOfMonth  int             `json:"dayOfMonth"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	StartDate   string          `json:"startDate"`
	ExpiryDate  *string         `json:"expiryDate,omitempty"`
	LastRunDate *time.Time      `json:"lastRunDate,omitempty"`
	IsActive    bool            `json:"isActive"`
}

// RuleDraft holds the caller-supplied fields of a new rule.
type RuleDraft struct {
	Name        string          `json:"name" validate:"required,max=100"`
	Type        LedgerType      `json:"type" validate:"required,oneof=income expense investment"`
	Amount      decimal.Decimal `json:"amount"`
	Frequency   Frequency       `json:"frequency" validate:"required,oneof=monthly quarterly yearly"`
	DayOfMonth  int             `json:"dayOfMonth" validate:"min=1,max=28"`
	Category    string          `json:"category" validate:"required,max=100"`
	Description string          `json:"description" validate:"max=500"`
	StartDate   string          `json:"startDate" validate:"required,datetime=2006-01-02"`
	ExpiryDate  *string         `json:"expiryDate" validate:"omitempty,datetime=2006-01-02"`
}

// NewAutomationRule builds an active rule whose cursor is seeded to now,
// so the first firing happens in a later period.
func NewAutomationRule(id string, draft RuleDraft, now time.Time) AutomationRule {
	lastRun := NewTimestamp(now)
	return AutomationRule{
		ID:          id,
		Name:        draft.Name,
		Type:        draft.Type,
		Amount:      draft.Amount,
		Frequency:   draft.Frequency,
		DayOfMonth:  draft.DayOfMonth,
		Category:    draft.Category,
		Description: draft.Description,
		StartDate:   draft.StartDate,
		ExpiryDate:  draft.ExpiryDate,
		LastRunDate: &lastRun,
		IsActive:    true,
	}
}

// IsExpired reports whether now's calendar date is strictly after the expiry date.
func (r AutomationRule) IsExpired(now time.Time) (bool, error) {
	if r.ExpiryDate == nil || *r.ExpiryDate == "" {
		return false, nil
	}
	expiry, err := ParseDate(*r.ExpiryDate, now.Location())
	if err != nil {
		return false, fmt.Errorf("rule %s: %w", r.ID, err)
	}
	return CivilDate(now).After(expiry), nil
}

// HasStarted reports whether now's calendar date is on or after the start date.
func (r AutomationRule) HasStarted(now time.Time) (bool, error) {
	if r.StartDate == "" {
		return true, nil
	}
	start, err := ParseDate(r.StartDate, now.Location())
	if err != nil {
		return false, fmt.Errorf("rule %s: %w", r.ID, err)
	}
	return !CivilDate(now).Before(start), nil
}

// cursor is the instant the due check compares against.
func (r AutomationRule) cursor(loc *time.Location) (time.Time, error) {
	if r.LastRunDate != nil && !r.LastRunDate.IsZero() {
		return r.LastRunDate.In(loc), nil
	}
	start, err := ParseDate(r.StartDate, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("rule %s: %w", r.ID, err)
	}
	return start, nil
}

// IsDue reports whether the rule should fire at now: the current period is later than the
// period of the cursor and the configured day of month has been reached. Missed periods are
// not back-filled.
func (r AutomationRule) IsDue(now time.Time) (bool, error) {
	months := r.Frequency.PeriodMonths()
	if months == 0 {
		return false, fmt.Errorf("rule %s: unknown frequency %q", r.ID, r.Frequency)
	}
	last, err := r.cursor(now.Location())
	if err != nil {
		return false, err
	}
	return PeriodIndex(now, months) > PeriodIndex(last, months) && now.Day() >= r.DayOfMonth, nil
}

// Materialize builds the record draft for a firing at now.
func (r AutomationRule) Materialize(now time.Time) RecordDraft {
	draft := RecordDraft{
		Date:        FormatDate(now),
		Amount:      r.Amount,
		Category:    r.Category,
		Description: automatedPrefix + r.Description,
		Type:        r.Type,
	}
	if r.Type == LedgerInvestment {
		draft.InvestmentType = AutomatedInvestmentType
	}
	return draft
}
