package services_test

import (
	"context"

	"github.com/SscSPs/mtrack/internal/core/domain"
	portsrepo "github.com/SscSPs/mtrack/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockRecordRepository is a mock type for the RecordRepositoryFacade interface
type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) Initialize(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRecordRepository) ListRecords(ctx context.Context, ledger domain.LedgerType) ([]domain.Record, error) {
	args := m.Called(ctx, ledger)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Record), args.Error(1)
}

func (m *MockRecordRepository) ReadRecords(ctx context.Context, ledger domain.LedgerType) ([]domain.Record, error) {
	args := m.Called(ctx, ledger)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Record), args.Error(1)
}

func (m *MockRecordRepository) AddRecord(ctx context.Context, ledger domain.LedgerType, draft domain.RecordDraft) (*domain.Record, error) {
	args := m.Called(ctx, ledger, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Record), args.Error(1)
}

func (m *MockRecordRepository) UpdateRecord(ctx context.Context, ledger domain.LedgerType, update domain.RecordUpdate) (domain.MutationResult, error) {
	args := m.Called(ctx, ledger, update)
	return args.Get(0).(domain.MutationResult), args.Error(1)
}

func (m *MockRecordRepository) DeleteRecord(ctx context.Context, ledger domain.LedgerType, id string) (domain.MutationResult, error) {
	args := m.Called(ctx, ledger, id)
	return args.Get(0).(domain.MutationResult), args.Error(1)
}

// MockRuleRepository is a mock type for the RuleRepositoryFacade interface
type MockRuleRepository struct {
	mock.Mock
}

func (m *MockRuleRepository) Initialize(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRuleRepository) ListRules(ctx context.Context) ([]domain.AutomationRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AutomationRule), args.Error(1)
}

func (m *MockRuleRepository) FindRuleByID(ctx context.Context, ruleID string) (*domain.AutomationRule, error) {
	args := m.Called(ctx, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AutomationRule), args.Error(1)
}

func (m *MockRuleRepository) AddRule(ctx context.Context, draft domain.RuleDraft) (*domain.AutomationRule, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AutomationRule), args.Error(1)
}

func (m *MockRuleRepository) UpdateRule(ctx context.Context, rule domain.AutomationRule) (domain.MutationResult, error) {
	args := m.Called(ctx, rule)
	return args.Get(0).(domain.MutationResult), args.Error(1)
}

func (m *MockRuleRepository) DeleteRule(ctx context.Context, ruleID string) (domain.MutationResult, error) {
	args := m.Called(ctx, ruleID)
	return args.Get(0).(domain.MutationResult), args.Error(1)
}

func (m *MockRuleRepository) UpdateRulesBatch(ctx context.Context, fn portsrepo.RuleBatchFunc) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

// MockGoalRepository is a mock type for the GoalRepositoryFacade interface
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) Initialize(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGoalRepository) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) FindGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	args := m.Called(ctx, goalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) TotalAllocated(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockGoalRepository) AddGoal(ctx context.Context, draft domain.GoalDraft) (*domain.Goal, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) goalResult(args mock.Arguments) (*domain.Goal, domain.MutationResult, error) {
	var goal *domain.Goal
	if g := args.Get(0); g != nil {
		goal = g.(*domain.Goal)
	}
	return goal, args.Get(1).(domain.MutationResult), args.Error(2)
}

func (m *MockGoalRepository) UpdateGoal(ctx context.Context, goalID string, update domain.GoalUpdate) (*domain.Goal, domain.MutationResult, error) {
	return m.goalResult(m.Called(ctx, goalID, update))
}

func (m *MockGoalRepository) DeleteGoal(ctx context.Context, goalID string) (domain.MutationResult, error) {
	args := m.Called(ctx, goalID)
	return args.Get(0).(domain.MutationResult), args.Error(1)
}

func (m *MockGoalRepository) AllocateFunds(ctx context.Context, goalID string, delta decimal.Decimal) (*domain.Goal, domain.MutationResult, error) {
	return m.goalResult(m.Called(ctx, goalID, delta))
}

func (m *MockGoalRepository) CompleteGoal(ctx context.Context, goalID string) (*domain.Goal, domain.MutationResult, error) {
	return m.goalResult(m.Called(ctx, goalID))
}

// MockSettingsRepository is a mock type for the SettingsRepository interface
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Initialize(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSettingsRepository) GetSettings(ctx context.Context) (domain.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Settings), args.Error(1)
}

func (m *MockSettingsRepository) UpdateSettings(ctx context.Context, update domain.SettingsUpdate) (domain.Settings, error) {
	args := m.Called(ctx, update)
	return args.Get(0).(domain.Settings), args.Error(1)
}

// MockDataTransfer is a mock type for the DataTransfer interface
type MockDataTransfer struct {
	mock.Mock
}

func (m *MockDataTransfer) Export(ctx context.Context, destDir string) ([]string, error) {
	args := m.Called(ctx, destDir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDataTransfer) Import(ctx context.Context, srcDir string) ([]string, error) {
	args := m.Called(ctx, srcDir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var (
	_ portsrepo.RecordRepositoryFacade = (*MockRecordRepository)(nil)
	_ portsrepo.RuleRepositoryFacade   = (*MockRuleRepository)(nil)
	_ portsrepo.GoalRepositoryFacade   = (*MockGoalRepository)(nil)
	_ portsrepo.SettingsRepository     = (*MockSettingsRepository)(nil)
	_ portsrepo.DataTransfer           = (*MockDataTransfer)(nil)
)
