package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/mtrack/internal/apperrors"
	"github.com/SscSPs/mtrack/internal/core/domain"
	portsrepo "github.com/SscSPs/mtrack/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mtrack/internal/core/ports/services"
	"github.com/SscSPs/mtrack/internal/utils"
	"github.com/SscSPs/mtrack/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

const (
	goalPurchaseCategory = "Goal"
	goalPurchasePrefix   = "Purchase: "
)

// goalService implements the GoalSvcFacade interface
type goalService struct {
	BaseService
	goalRepo   portsrepo.GoalRepositoryFacade
	recordRepo portsrepo.RecordRepositoryFacade
	now        func() time.Time

	// allocMu serialises the liquid cash check with the allocation it guards.
	allocMu sync.Mutex
}

// GoalServiceOption is a functional option for configuring the goal service
type GoalServiceOption func(*goalService)

// WithGoalClock overrides the time source used for purchase dates.
func WithGoalClock(now func() time.Time) GoalServiceOption {
	return func(s *goalService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewGoalService creates a new goal service. Records are needed to work out liquid cash and to
// book completed purchases.
func NewGoalService(goalRepo portsrepo.GoalRepositoryFacade, recordRepo portsrepo.RecordRepositoryFacade, options ...GoalServiceOption) portssvc.GoalSvcFacade {
	svc := &goalService{
		goalRepo:   goalRepo,
		recordRepo: recordRepo,
		now:        time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

func (s *goalService) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	goals, err := s.goalRepo.ListGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

func (s *goalService) GetGoal(ctx context.Context, goalID string) (*domain.Goal, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: goal %s", apperrors.ErrNotFound, goalID)
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return goal, nil
}

type ledgerReader func(ctx context.Context, ledger domain.LedgerType) ([]domain.Record, error)

// GetFundsSummary reports the cash position. A damaged ledger counts as empty here; the
// allocation check reads strictly instead.
func (s *goalService) GetFundsSummary(ctx context.Context) (domain.FundsSummary, error) {
	return s.fundsSummary(ctx, s.recordRepo.ListRecords)
}

func (s *goalService) fundsSummary(ctx context.Context, read ledgerReader) (domain.FundsSummary, error) {
	ledgers := make(map[domain.LedgerType][]domain.Record, len(domain.Ledgers))
	for _, ledger := range domain.Ledgers {
		records, err := read(ctx, ledger)
		if err != nil {
			return domain.FundsSummary{}, fmt.Errorf("failed to list %s records: %w", ledger, err)
		}
		ledgers[ledger] = records
	}
	allocated, err := s.goalRepo.TotalAllocated(ctx)
	if err != nil {
		return domain.FundsSummary{}, fmt.Errorf("failed to total goal allocations: %w", err)
	}
	return accounting.Summarize(ledgers, allocated), nil
}

func (s *goalService) CreateGoal(ctx context.Context, draft domain.GoalDraft) (*domain.Goal, error) {
	if err := s.ValidateStruct(draft); err != nil {
		return nil, err
	}
	if err := accounting.ValidateAmount(draft.TargetAmount, false); err != nil {
		return nil, apperrors.Validationf("targetAmount: %v", err)
	}
	goal, err := s.goalRepo.AddGoal(ctx, draft)
	if err != nil {
		s.LogError(ctx, err, "Failed to add goal", slog.String("name", draft.Name))
		return nil, fmt.Errorf("failed to add goal: %w", err)
	}
	s.LogInfo(ctx, "Goal added", slog.String("goal_id", goal.ID))
	return goal, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, goalID string, update domain.GoalUpdate) (*domain.Goal, error) {
	if err := s.ValidateStruct(update); err != nil {
		return nil, err
	}
	if update.Name != nil && *update.Name == "" {
		return nil, apperrors.Validationf("name must not be empty")
	}
	if update.TargetAmount != nil {
		if err := accounting.ValidateAmount(*update.TargetAmount, false); err != nil {
			return nil, apperrors.Validationf("targetAmount: %v", err)
		}
	}

	goal, result, err := s.goalRepo.UpdateGoal(ctx, goalID, update)
	if err != nil {
		s.LogError(ctx, err, "Failed to update goal", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	if result == domain.MutationNotFound {
		return nil, fmt.Errorf("%w: goal %s", apperrors.ErrNotFound, goalID)
	}
	return goal, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, goalID string) (domain.MutationResult, error) {
	result, err := s.goalRepo.DeleteGoal(ctx, goalID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete goal", slog.String("goal_id", goalID))
		return "", fmt.Errorf("failed to delete goal: %w", err)
	}
	return result, nil
}

func (s *goalService) AllocateFunds(ctx context.Context, goalID string, delta decimal.Decimal) (*domain.Goal, error) {
	if delta.IsZero() {
		return nil, apperrors.Validationf("allocation amount must not be zero")
	}

	s.allocMu.Lock()
	defer s.allocMu.Unlock()

	goal, err := s.GetGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if delta.IsPositive() {
		// Money set aside for a completed goal can still be released.
		if goal.Status == domain.GoalCompleted {
			return nil, apperrors.Validationf("goal %s is already completed", goalID)
		}
		summary, err := s.fundsSummary(ctx, s.recordRepo.ReadRecords)
		if err != nil {
			s.LogError(ctx, err, "Refusing allocation, ledgers could not be read", slog.String("goal_id", goalID))
			return nil, err
		}
		if delta.GreaterThan(summary.LiquidCash) {
			return nil, apperrors.Validationf("cannot allocate %s, only %s liquid cash available",
				utils.FormatMoney(delta), utils.FormatMoney(summary.LiquidCash))
		}
	}

	updated, result, err := s.goalRepo.AllocateFunds(ctx, goalID, delta)
	if err != nil {
		s.LogError(ctx, err, "Failed to allocate funds", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to allocate funds: %w", err)
	}
	if result == domain.MutationNotFound {
		return nil, fmt.Errorf("%w: goal %s", apperrors.ErrNotFound, goalID)
	}
	s.LogInfo(ctx, "Funds allocated",
		slog.String("goal_id", goalID),
		slog.String("delta", delta.String()),
		slog.String("allocated", updated.AllocatedAmount.String()))
	return updated, nil
}

func (s *goalService) CompleteGoalPurchase(ctx context.Context, goalID string) (*domain.Goal, *domain.Record, error) {
	goal, err := s.GetGoal(ctx, goalID)
	if err != nil {
		return nil, nil, err
	}
	if goal.Status == domain.GoalCompleted {
		return nil, nil, apperrors.Validationf("goal %s is already completed", goalID)
	}

	completed, result, err := s.goalRepo.CompleteGoal(ctx, goalID)
	if err != nil {
		s.LogError(ctx, err, "Failed to complete goal", slog.String("goal_id", goalID))
		return nil, nil, fmt.Errorf("failed to complete goal: %w", err)
	}
	switch result {
	case domain.MutationNotFound:
		return nil, nil, fmt.Errorf("%w: goal %s", apperrors.ErrNotFound, goalID)
	case domain.MutationUnchanged:
		// Completed concurrently; the other caller books the expense.
		return nil, nil, apperrors.Validationf("goal %s is already completed", goalID)
	}

	draft := domain.RecordDraft{
		Date:        domain.FormatDate(s.now()),
		Amount:      completed.TargetAmount,
		Category:    goalPurchaseCategory,
		Description: goalPurchasePrefix + completed.Name,
		Type:        domain.LedgerExpense,
	}
	rec, err := s.recordRepo.AddRecord(ctx, domain.LedgerExpense, draft)
	if err != nil {
		s.LogError(ctx, err, "Goal completed but purchase expense was not recorded", slog.String("goal_id", goalID))
		return completed, nil, fmt.Errorf("failed to record purchase for goal %s: %w", goalID, err)
	}

	s.LogInfo(ctx, "Goal purchase completed",
		slog.String("goal_id", goalID),
		slog.String("record_id", rec.ID),
		slog.String("amount", completed.TargetAmount.String()))
	return completed, rec, nil
}
