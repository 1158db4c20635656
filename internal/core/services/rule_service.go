package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/mtrack/internal/apperrors"
	"github.com/SscSPs/mtrack/internal/core/domain"
	portsrepo "github.com/SscSPs/mtrack/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mtrack/internal/core/ports/services"
	"github.com/SscSPs/mtrack/internal/utils/accounting"
)

// ruleService implements the RuleSvcFacade interface
type ruleService struct {
	BaseService
	ruleRepo portsrepo.RuleRepositoryFacade
}

// NewRuleService creates a new automation rule service.
func NewRuleService(repo portsrepo.RuleRepositoryFacade) portssvc.RuleSvcFacade {
	return &ruleService{ruleRepo: repo}
}

// validateRuleDraft checks the tags plus the rules that span fields.
func (s *ruleService) validateRuleDraft(draft domain.RuleDraft) error {
	if err := s.ValidateStruct(draft); err != nil {
		return err
	}
	if err := accounting.ValidateAmount(draft.Amount, false); err != nil {
		return apperrors.Validationf("%v", err)
	}
	if draft.ExpiryDate != nil && *draft.ExpiryDate != "" {
		start, _ := time.Parse(domain.DateLayout, draft.StartDate)
		expiry, _ := time.Parse(domain.DateLayout, *draft.ExpiryDate)
		if expiry.Before(start) {
			return apperrors.Validationf("expiryDate %s is before startDate %s", *draft.ExpiryDate, draft.StartDate)
		}
	}
	return nil
}

func ruleToDraft(rule domain.AutomationRule) domain.RuleDraft {
	return domain.RuleDraft{
		Name:        rule.Name,
		Type:        rule.Type,
		Amount:      rule.Amount,
		Frequency:   rule.Frequency,
		DayOfMonth:  rule.DayOfMonth,
		Category:    rule.Category,
		Description: rule.Description,
		StartDate:   rule.StartDate,
		ExpiryDate:  rule.ExpiryDate,
	}
}

func (s *ruleService) ListRules(ctx context.Context) ([]domain.AutomationRule, error) {
	rules, err := s.ruleRepo.ListRules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list automation rules: %w", err)
	}
	return rules, nil
}

func (s *ruleService) GetRule(ctx context.Context, ruleID string) (*domain.AutomationRule, error) {
	rule, err := s.ruleRepo.FindRuleByID(ctx, ruleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: rule %s", apperrors.ErrNotFound, ruleID)
		}
		return nil, fmt.Errorf("failed to get automation rule: %w", err)
	}
	return rule, nil
}

func (s *ruleService) CreateRule(ctx context.Context, draft domain.RuleDraft) (*domain.AutomationRule, error) {
	if err := s.validateRuleDraft(draft); err != nil {
		return nil, err
	}
	rule, err := s.ruleRepo.AddRule(ctx, draft)
	if err != nil {
		s.LogError(ctx, err, "Failed to add automation rule", slog.String("name", draft.Name))
		return nil, fmt.Errorf("failed to add automation rule: %w", err)
	}
	s.LogInfo(ctx, "Automation rule added", slog.String("rule_id", rule.ID), slog.String("frequency", string(rule.Frequency)))
	return rule, nil
}

func (s *ruleService) UpdateRule(ctx context.Context, rule domain.AutomationRule) (*domain.AutomationRule, error) {
	if err := s.validateRuleDraft(ruleToDraft(rule)); err != nil {
		return nil, err
	}
	existing, err := s.GetRule(ctx, rule.ID)
	if err != nil {
		return nil, err
	}
	if rule.LastRunDate == nil {
		rule.LastRunDate = existing.LastRunDate
	}

	result, err := s.ruleRepo.UpdateRule(ctx, rule)
	if err != nil {
		s.LogError(ctx, err, "Failed to update automation rule", slog.String("rule_id", rule.ID))
		return nil, fmt.Errorf("failed to update automation rule: %w", err)
	}
	if result == domain.MutationNotFound {
		return nil, fmt.Errorf("%w: rule %s", apperrors.ErrNotFound, rule.ID)
	}
	return &rule, nil
}

func (s *ruleService) DeleteRule(ctx context.Context, ruleID string) (domain.MutationResult, error) {
	result, err := s.ruleRepo.DeleteRule(ctx, ruleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete automation rule", slog.String("rule_id", ruleID))
		return "", fmt.Errorf("failed to delete automation rule: %w", err)
	}
	return result, nil
}
