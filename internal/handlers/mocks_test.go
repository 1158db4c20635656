package handlers_test

import (
	"context"

	"github.com/SscSPs/mtrack/internal/core/domain"
	portssvc "github.com/SscSPs/mtrack/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock RecordService ---
type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) ListRecords(ctx context.Context, ledger domain.LedgerType) ([]domain.Record, error) {
	args := m.Called(ctx, ledger)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Record), args.Error(1)
}

func (m *MockRecordService) CreateRecord(ctx context.Context, ledger domain.LedgerType, draft domain.RecordDraft) (*domain.Record, error) {
	args := m.Called(ctx, ledger, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Record), args.Error(1)
}

func (m *MockRecordService) UpdateRecord(ctx context.Context, ledger domain.LedgerType, update domain.RecordUpdate) (domain.MutationResult, error) {
	args := m.Called(ctx, ledger, update)
	return args.Get(0).(domain.MutationResult), args.Error(1)
}

func (m *MockRecordService) DeleteRecord(ctx context.Context, ledger domain.LedgerType, id string) (domain.MutationResult, error) {
	args := m.Called(ctx, ledger, id)
	return args.Get(0).(domain.MutationResult), args.Error(1)
}

var _ portssvc.RecordSvcFacade = (*MockRecordService)(nil)

// --- Mock RuleService ---
type MockRuleService struct {
	mock.Mock
}

func (m *MockRuleService) ListRules(ctx context.Context) ([]domain.AutomationRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AutomationRule), args.Error(1)
}

func (m *MockRuleService) GetRule(ctx context.Context, ruleID string) (*domain.AutomationRule, error) {
	args := m.Called(ctx, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AutomationRule), args.Error(1)
}

func (m *MockRuleService) CreateRule(ctx context.Context, draft domain.RuleDraft) (*domain.AutomationRule, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AutomationRule), args.Error(1)
}

func (m *MockRuleService) UpdateRule(ctx context.Context, rule domain.AutomationRule) (*domain.AutomationRule, error) {
	args := m.Called(ctx, rule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AutomationRule), args.Error(1)
}

func (m *MockRuleService) DeleteRule(ctx context.Context, ruleID string) (domain.MutationResult, error) {
	args := m.Called(ctx, ruleID)
	return args.Get(0).(domain.MutationResult), args.Error(1)
}

var _ portssvc.RuleSvcFacade = (*MockRuleService)(nil)

// --- Mock AutomationService ---
type MockAutomationService struct {
	mock.Mock
}

func (m *MockAutomationService) RunAutomation(ctx context.Context) (domain.AutomationReport, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.AutomationReport), args.Error(1)
}

var _ portssvc.AutomationSvc = (*MockAutomationService)(nil)

// --- Mock GoalService ---
type MockGoalService struct {
	mock.Mock
}

func (m *MockGoalService) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalService) GetGoal(ctx context.Context, goalID string) (*domain.Goal, error) {
	args := m.Called(ctx, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalService) GetFundsSummary(ctx context.Context) (domain.FundsSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.FundsSummary), args.Error(1)
}

func (m *MockGoalService) CreateGoal(ctx context.Context, draft domain.GoalDraft) (*domain.Goal, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalService) UpdateGoal(ctx context.Context, goalID string, update domain.GoalUpdate) (*domain.Goal, error) {
	args := m.Called(ctx, goalID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalService) DeleteGoal(ctx context.Context, goalID string) (domain.MutationResult, error) {
	args := m.Called(ctx, goalID)
	return args.Get(0).(domain.MutationResult), args.Error(1)
}

func (m *MockGoalService) AllocateFunds(ctx context.Context, goalID string, delta decimal.Decimal) (*domain.Goal, error) {
	args := m.Called(ctx, goalID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalService) CompleteGoalPurchase(ctx context.Context, goalID string) (*domain.Goal, *domain.Record, error) {
	args := m.Called(ctx, goalID)
	var goal *domain.Goal
	if g := args.Get(0); g != nil {
		goal = g.(*domain.Goal)
	}
	var rec *domain.Record
	if r := args.Get(1); r != nil {
		rec = r.(*domain.Record)
	}
	return goal, rec, args.Error(2)
}

var _ portssvc.GoalSvcFacade = (*MockGoalService)(nil)

// --- Mock SettingsService ---
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetSettings(ctx context.Context) (domain.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Settings), args.Error(1)
}

func (m *MockSettingsService) UpdateSettings(ctx context.Context, update domain.SettingsUpdate) (domain.Settings, error) {
	args := m.Called(ctx, update)
	return args.Get(0).(domain.Settings), args.Error(1)
}

var _ portssvc.SettingsSvc = (*MockSettingsService)(nil)

// --- Mock DataService ---
type MockDataService struct {
	mock.Mock
}

func (m *MockDataService) Export(ctx context.Context, destDir string) ([]string, error) {
	args := m.Called(ctx, destDir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDataService) Import(ctx context.Context, srcDir string) ([]string, error) {
	args := m.Called(ctx, srcDir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ portssvc.DataSvc = (*MockDataService)(nil)
