package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/mtrack/internal/core/domain"
	portsrepo "github.com/SscSPs/mtrack/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mtrack/internal/core/ports/services"
)

// AutomationService fires due automation rules into the ledgers.
type AutomationService struct {
	BaseService
	ruleRepo   portsrepo.RuleRepositoryFacade
	recordRepo portsrepo.RecordWriter
	now        func() time.Time
}

// AutomationOption is a functional option for configuring the automation service
type AutomationOption func(*AutomationService)

// WithClock overrides the time source. The returned time's location decides calendar dates.
func WithClock(now func() time.Time) AutomationOption {
	return func(s *AutomationService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewAutomationService creates the automation engine.
func NewAutomationService(ruleRepo portsrepo.RuleRepositoryFacade, recordRepo portsrepo.RecordWriter, options ...AutomationOption) *AutomationService {
	svc := &AutomationService{
		ruleRepo:   ruleRepo,
		recordRepo: recordRepo,
		now:        time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AutomationSvc = (*AutomationService)(nil)

// firedRecord identifies a record written during a run.
type firedRecord struct {
	ledger domain.LedgerType
	id     string
}

// RunAutomation evaluates every rule once. Due rules produce one record each and have their
// cursor moved to now; expired rules are deactivated. The rule collection is written once at
// the end if anything changed. A rule whose record could not be written keeps its cursor and
// is retried on the next run. If the rule collection cannot be written, the records of this
// run are deleted again so the unchanged cursors do not fire them a second time.
func (s *AutomationService) RunAutomation(ctx context.Context) (domain.AutomationReport, error) {
	now := s.now()
	report := domain.AutomationReport{RanAt: domain.NewTimestamp(now)}
	var fired []firedRecord

	err := s.ruleRepo.UpdateRulesBatch(ctx, func(rules []domain.AutomationRule) (bool, error) {
		changed := false
		for i := range rules {
			if ctx.Err() != nil {
				// Keep what already fired; the rest is picked up next time.
				break
			}
			rule := &rules[i]
			logger := s.GetLogger(ctx).With(slog.String("rule_id", rule.ID), slog.String("rule_name", rule.Name))

			if !rule.IsActive {
				continue
			}

			expired, err := rule.IsExpired(now)
			if err != nil {
				report.Failed++
				logger.Error("Skipping rule with invalid expiry date", slog.String("error", err.Error()))
				continue
			}
			if expired {
				rule.IsActive = false
				report.Deactivated++
				changed = true
				logger.Info("Automation rule expired and was deactivated")
				continue
			}

			started, err := rule.HasStarted(now)
			if err != nil {
				report.Failed++
				logger.Error("Skipping rule with invalid start date", slog.String("error", err.Error()))
				continue
			}
			if !started {
				continue
			}

			due, err := rule.IsDue(now)
			if err != nil {
				report.Failed++
				logger.Error("Skipping rule that cannot be evaluated", slog.String("error", err.Error()))
				continue
			}
			if !due {
				continue
			}

			rec, err := s.recordRepo.AddRecord(ctx, rule.Type, rule.Materialize(now))
			if err != nil {
				report.Failed++
				logger.Error("Failed to record automated transaction", slog.String("error", err.Error()))
				continue
			}

			fired = append(fired, firedRecord{ledger: rule.Type, id: rec.ID})
			lastRun := domain.NewTimestamp(now)
			rule.LastRunDate = &lastRun
			report.Fired++
			changed = true
			logger.Info("Automation rule fired",
				slog.String("ledger", string(rule.Type)),
				slog.String("record_id", rec.ID),
				slog.String("amount", rule.Amount.String()))
		}
		return changed, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save automation rules",
			slog.Int("fired", report.Fired),
			slog.Int("deactivated", report.Deactivated))
		s.rollback(ctx, fired)
		return domain.AutomationReport{RanAt: report.RanAt}, fmt.Errorf("failed to save automation rules: %w", err)
	}

	if report.Fired > 0 || report.Deactivated > 0 || report.Failed > 0 {
		s.LogInfo(ctx, "Automation run finished",
			slog.Int("fired", report.Fired),
			slog.Int("deactivated", report.Deactivated),
			slog.Int("failed", report.Failed))
	}
	return report, nil
}

// rollback deletes records whose rules could not be saved. It runs even if ctx was cancelled.
func (s *AutomationService) rollback(ctx context.Context, fired []firedRecord) {
	cleanup := context.WithoutCancel(ctx)
	for _, f := range fired {
		if _, err := s.recordRepo.DeleteRecord(cleanup, f.ledger, f.id); err != nil {
			s.LogError(ctx, err, "Failed to remove automated record after rule save failure",
				slog.String("ledger", string(f.ledger)),
				slog.String("record_id", f.id))
		}
	}
	if len(fired) > 0 {
		s.LogInfo(ctx, "Rolled back automated records", slog.Int("count", len(fired)))
	}
}
