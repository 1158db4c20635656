package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/mtrack/internal/apperrors"
	"github.com/SscSPs/mtrack/internal/core/domain"
	portssvc "github.com/SscSPs/mtrack/internal/core/ports/services"
	"github.com/SscSPs/mtrack/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type GoalServiceTestSuite struct {
	suite.Suite
	goalRepo   *MockGoalRepository
	recordRepo *MockRecordRepository
	service    portssvc.GoalSvcFacade
	ctx        context.Context
	now        time.Time
}

func (suite *GoalServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.now = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
	suite.goalRepo = new(MockGoalRepository)
	suite.recordRepo = new(MockRecordRepository)
	suite.service = services.NewGoalService(suite.goalRepo, suite.recordRepo,
		services.WithGoalClock(func() time.Time { return suite.now }))
}

func activeGoal() *domain.Goal {
	return &domain.Goal{
		ID:              "g1",
		Name:            "Laptop",
		TargetAmount:    decimal.NewFromInt(1500),
		Deadline:        "2024-12-31",
		AllocatedAmount: decimal.NewFromInt(200),
		Status:          domain.GoalActive,
	}
}

// expectLedgers sets up ledger totals of income 5000, expense 1000, investment 500 for the
// given read method (ListRecords or ReadRecords).
func (suite *GoalServiceTestSuite) expectLedgers(method, allocated string) {
	suite.recordRepo.On(method, suite.ctx, domain.LedgerIncome).Return([]domain.Record{{Amount: decimal.NewFromInt(5000)}}, nil)
	suite.recordRepo.On(method, suite.ctx, domain.LedgerExpense).Return([]domain.Record{{Amount: decimal.NewFromInt(1000)}}, nil)
	suite.recordRepo.On(method, suite.ctx, domain.LedgerInvestment).Return([]domain.Record{{Amount: decimal.NewFromInt(500)}}, nil)
	suite.goalRepo.On("TotalAllocated", suite.ctx).Return(decimal.RequireFromString(allocated), nil)
}

func (suite *GoalServiceTestSuite) TestGetFundsSummary() {
	suite.expectLedgers("ListRecords", "1000")

	summary, err := suite.service.GetFundsSummary(suite.ctx)
	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(5000).Equal(summary.TotalIncome))
	suite.True(decimal.NewFromInt(2500).Equal(summary.LiquidCash))
}

func (suite *GoalServiceTestSuite) TestCreateGoal_Validation() {
	_, err := suite.service.CreateGoal(suite.ctx, domain.GoalDraft{Name: "x", TargetAmount: decimal.Zero, Deadline: "2024-12-31"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CreateGoal(suite.ctx, domain.GoalDraft{Name: "x", TargetAmount: decimal.NewFromInt(10), Deadline: "soon"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.goalRepo.AssertNotCalled(suite.T(), "AddGoal", mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestAllocateFunds_WithinLiquidCash() {
	suite.expectLedgers("ReadRecords", "1000")
	suite.goalRepo.On("FindGoalByID", suite.ctx, "g1").Return(activeGoal(), nil).Once()
	updated := activeGoal()
	updated.AllocatedAmount = decimal.NewFromInt(2700)
	suite.goalRepo.On("AllocateFunds", suite.ctx, "g1", decimal.NewFromInt(2500)).Return(updated, domain.MutationUpdated, nil).Once()

	goal, err := suite.service.AllocateFunds(suite.ctx, "g1", decimal.NewFromInt(2500))
	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(2700).Equal(goal.AllocatedAmount))
	suite.goalRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestAllocateFunds_RejectsOverAllocation() {
	suite.expectLedgers("ReadRecords", "1000")
	suite.goalRepo.On("FindGoalByID", suite.ctx, "g1").Return(activeGoal(), nil).Once()

	_, err := suite.service.AllocateFunds(suite.ctx, "g1", decimal.RequireFromString("2500.01"))
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.goalRepo.AssertNotCalled(suite.T(), "AllocateFunds", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestAllocateFunds_ReleaseSkipsCashCheck() {
	suite.goalRepo.On("FindGoalByID", suite.ctx, "g1").Return(activeGoal(), nil).Once()
	released := activeGoal()
	released.AllocatedAmount = decimal.Zero
	suite.goalRepo.On("AllocateFunds", suite.ctx, "g1", decimal.NewFromInt(-1000)).Return(released, domain.MutationUpdated, nil).Once()

	goal, err := suite.service.AllocateFunds(suite.ctx, "g1", decimal.NewFromInt(-1000))
	suite.Require().NoError(err)
	suite.True(goal.AllocatedAmount.IsZero())
	suite.recordRepo.AssertNotCalled(suite.T(), "ListRecords", mock.Anything, mock.Anything)
	suite.recordRepo.AssertNotCalled(suite.T(), "ReadRecords", mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestAllocateFunds_ReleaseFromCompletedGoal() {
	done := activeGoal()
	done.Status = domain.GoalCompleted
	suite.goalRepo.On("FindGoalByID", suite.ctx, "g1").Return(done, nil).Once()
	released := *done
	released.AllocatedAmount = decimal.NewFromInt(50)
	suite.goalRepo.On("AllocateFunds", suite.ctx, "g1", decimal.NewFromInt(-150)).Return(&released, domain.MutationUpdated, nil).Once()

	goal, err := suite.service.AllocateFunds(suite.ctx, "g1", decimal.NewFromInt(-150))
	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(50).Equal(goal.AllocatedAmount))
	suite.Equal(domain.GoalCompleted, goal.Status)
}

func (suite *GoalServiceTestSuite) TestAllocateFunds_RefusesWhenLedgerIsDamaged() {
	suite.goalRepo.On("FindGoalByID", suite.ctx, "g1").Return(activeGoal(), nil).Once()
	suite.recordRepo.On("ReadRecords", suite.ctx, domain.LedgerIncome).Return([]domain.Record{{Amount: decimal.NewFromInt(5000)}}, nil)
	suite.recordRepo.On("ReadRecords", suite.ctx, domain.LedgerExpense).Return(nil, errors.New("failed to read expense ledger"))

	_, err := suite.service.AllocateFunds(suite.ctx, "g1", decimal.NewFromInt(100))
	suite.Require().Error(err)
	suite.goalRepo.AssertNotCalled(suite.T(), "AllocateFunds", mock.Anything, mock.Anything, mock.Anything)
	suite.recordRepo.AssertNotCalled(suite.T(), "ListRecords", mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestAllocateFunds_Errors() {
	_, err := suite.service.AllocateFunds(suite.ctx, "g1", decimal.Zero)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.goalRepo.On("FindGoalByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()
	_, err = suite.service.AllocateFunds(suite.ctx, "missing", decimal.NewFromInt(1))
	suite.ErrorIs(err, apperrors.ErrNotFound)

	done := activeGoal()
	done.Status = domain.GoalCompleted
	suite.goalRepo.On("FindGoalByID", suite.ctx, "g1").Return(done, nil).Once()
	_, err = suite.service.AllocateFunds(suite.ctx, "g1", decimal.NewFromInt(1))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *GoalServiceTestSuite) TestCompleteGoalPurchase_RecordsExpense() {
	suite.goalRepo.On("FindGoalByID", suite.ctx, "g1").Return(activeGoal(), nil).Once()
	completed := activeGoal()
	completed.Status = domain.GoalCompleted
	suite.goalRepo.On("CompleteGoal", suite.ctx, "g1").Return(completed, domain.MutationUpdated, nil).Once()

	expected := domain.RecordDraft{
		Date:        "2024-05-20",
		Amount:      decimal.NewFromInt(1500),
		Category:    "Goal",
		Description: "Purchase: Laptop",
		Type:        domain.LedgerExpense,
	}
	suite.recordRepo.On("AddRecord", suite.ctx, domain.LedgerExpense, expected).
		Return(&domain.Record{ID: "rec-1", Type: domain.LedgerExpense}, nil).Once()

	goal, rec, err := suite.service.CompleteGoalPurchase(suite.ctx, "g1")
	suite.Require().NoError(err)
	suite.Equal(domain.GoalCompleted, goal.Status)
	suite.Equal("rec-1", rec.ID)
	suite.goalRepo.AssertExpectations(suite.T())
	suite.recordRepo.AssertExpectations(suite.T())
}

func (suite *GoalServiceTestSuite) TestCompleteGoalPurchase_AlreadyCompletedIsRejected() {
	done := activeGoal()
	done.Status = domain.GoalCompleted
	suite.goalRepo.On("FindGoalByID", suite.ctx, "g1").Return(done, nil).Once()

	_, _, err := suite.service.CompleteGoalPurchase(suite.ctx, "g1")
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.goalRepo.AssertNotCalled(suite.T(), "CompleteGoal", mock.Anything, mock.Anything)
	suite.recordRepo.AssertNotCalled(suite.T(), "AddRecord", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestCompleteGoalPurchase_ConcurrentCompletion() {
	suite.goalRepo.On("FindGoalByID", suite.ctx, "g1").Return(activeGoal(), nil).Once()
	done := activeGoal()
	done.Status = domain.GoalCompleted
	suite.goalRepo.On("CompleteGoal", suite.ctx, "g1").Return(done, domain.MutationUnchanged, nil).Once()

	_, _, err := suite.service.CompleteGoalPurchase(suite.ctx, "g1")
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.recordRepo.AssertNotCalled(suite.T(), "AddRecord", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GoalServiceTestSuite) TestCompleteGoalPurchase_ExpenseFailure() {
	suite.goalRepo.On("FindGoalByID", suite.ctx, "g1").Return(activeGoal(), nil).Once()
	completed := activeGoal()
	completed.Status = domain.GoalCompleted
	suite.goalRepo.On("CompleteGoal", suite.ctx, "g1").Return(completed, domain.MutationUpdated, nil).Once()
	suite.recordRepo.On("AddRecord", suite.ctx, domain.LedgerExpense, mock.Anything).Return(nil, errors.New("disk full")).Once()

	goal, rec, err := suite.service.CompleteGoalPurchase(suite.ctx, "g1")
	suite.Error(err)
	suite.Nil(rec)
	suite.Require().NotNil(goal)
	suite.Equal(domain.GoalCompleted, goal.Status)
}

func (suite *GoalServiceTestSuite) TestUpdateGoal() {
	name := "Gaming laptop"
	update := domain.GoalUpdate{Name: &name}
	updated := activeGoal()
	updated.Name = name
	suite.goalRepo.On("UpdateGoal", suite.ctx, "g1", update).Return(updated, domain.MutationUpdated, nil).Once()
	suite.goalRepo.On("UpdateGoal", suite.ctx, "missing", update).Return(nil, domain.MutationNotFound, nil).Once()

	goal, err := suite.service.UpdateGoal(suite.ctx, "g1", update)
	suite.Require().NoError(err)
	suite.Equal(name, goal.Name)

	_, err = suite.service.UpdateGoal(suite.ctx, "missing", update)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	negative := decimal.NewFromInt(-5)
	_, err = suite.service.UpdateGoal(suite.ctx, "g1", domain.GoalUpdate{TargetAmount: &negative})
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
