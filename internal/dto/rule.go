package dto

import (
	"time"

	"github.com/SscSPs/mtrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRuleRequest defines the data needed to create an automation rule.
type CreateRuleRequest struct {
	Name        string            `json:"name" binding:"required"`
	Type        domain.LedgerType `json:"type" binding:"required,oneof=income expense investment"`
	Amount      decimal.Decimal   `json:"amount"`
	Frequency   domain.Frequency  `json:"frequency" binding:"required,oneof=monthly quarterly yearly"`
	DayOfMonth  int               `json:"dayOfMonth" binding:"required,min=1,max=28"`
	Category    string            `json:"category" binding:"required"`
	Description string            `json:"description"`
	StartDate   string            `json:"startDate" binding:"required"`
	ExpiryDate  *string           `json:"expiryDate"`
}

// ToDraft converts the request into a domain draft.
func (r CreateRuleRequest) ToDraft() domain.RuleDraft {
	return domain.RuleDraft{
		Name:        r.Name,
		Type:        r.Type,
		Amount:      r.Amount,
		Frequency:   r.Frequency,
		DayOfMonth:  r.DayOfMonth,
		Category:    r.Category,
		Description: r.Description,
		StartDate:   r.StartDate,
		ExpiryDate:  emptyToNil(r.ExpiryDate),
	}
}

// UpdateRuleRequest replaces every editable field of a rule. LastRunDate is optional; when
// omitted the stored cursor is kept.
type UpdateRuleRequest struct {
	CreateRuleRequest
	IsActive    *bool      `json:"isActive"`
	LastRunDate *time.Time `json:"lastRunDate"`
}

// ToRule builds the replacement rule for id. A missing isActive keeps the rule active.
func (r UpdateRuleRequest) ToRule(id string) domain.AutomationRule {
	d := r.ToDraft()
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	var lastRun *time.Time
	if r.LastRunDate != nil {
		t := domain.NewTimestamp(*r.LastRunDate)
		lastRun = &t
	}
	return domain.AutomationRule{
		ID:          id,
		Name:        d.Name,
		Type:        d.Type,
		Amount:      d.Amount,
		Frequency:   d.Frequency,
		DayOfMonth:  d.DayOfMonth,
		Category:    d.Category,
		Description: d.Description,
		StartDate:   d.StartDate,
		ExpiryDate:  d.ExpiryDate,
		LastRunDate: lastRun,
		IsActive:    active,
	}
}

// RuleResponse defines the data returned for an automation rule.
type RuleResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Type        domain.LedgerType `json:"type"`
	Amount      decimal.Decimal   `json:"amount"`
	Frequency   domain.Frequency  `json:"frequency"`
	DayOfMonth  int               `json:"dayOfMonth"`
	Category    string            `json:"category"`
	Description string            `json:"description"`
	StartDate   string            `json:"startDate"`
	ExpiryDate  *string           `json:"expiryDate,omitempty"`
	LastRunDate *time.Time        `json:"lastRunDate,omitempty"`
	IsActive    bool              `json:"isActive"`
}

// ToRuleResponse converts a domain.AutomationRule to RuleResponse DTO
func ToRuleResponse(rule *domain.AutomationRule) RuleResponse {
	return RuleResponse{
		ID:          rule.ID,
		Name:        rule.Name,
		Type:        rule.Type,
		Amount:      rule.Amount,
		Frequency:   rule.Frequency,
		DayOfMonth:  rule.DayOfMonth,
		Category:    rule.Category,
		Description: rule.Description,
		StartDate:   rule.StartDate,
		ExpiryDate:  rule.ExpiryDate,
		LastRunDate: rule.LastRunDate,
		IsActive:    rule.IsActive,
	}
}

// ToListRuleResponse converts rules to DTOs.
func ToListRuleResponse(rules []domain.AutomationRule) []RuleResponse {
	res := make([]RuleResponse, len(rules))
	for i := range rules {
		res[i] = ToRuleResponse(&rules[i])
	}
	return res
}

// AutomationRunResponse reports what a manual automation run did.
type AutomationRunResponse struct {
	RanAt       time.Time `json:"ranAt"`
	Fired       int       `json:"fired"`
	Deactivated int       `json:"deactivated"`
	Failed      int       `json:"failed"`
}

// ToAutomationRunResponse converts an automation report.
func ToAutomationRunResponse(report domain.AutomationReport) AutomationRunResponse {
	return AutomationRunResponse{
		RanAt:       report.RanAt,
		Fired:       report.Fired,
		Deactivated: report.Deactivated,
		Failed:      report.Failed,
	}
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
