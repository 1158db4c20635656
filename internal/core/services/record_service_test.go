package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/mtrack/internal/apperrors"
	"github.com/SscSPs/mtrack/internal/core/domain"
	portssvc "github.com/SscSPs/mtrack/internal/core/ports/services"
	"github.com/SscSPs/mtrack/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RecordServiceTestSuite struct {
	suite.Suite
	mockRepo *MockRecordRepository
	service  portssvc.RecordSvcFacade
	ctx      context.Context
}

func (suite *RecordServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockRecordRepository)
	suite.service = services.NewRecordService(suite.mockRepo)
}

func validDraft() domain.RecordDraft {
	return domain.RecordDraft{
		Date:     "2024-01-01",
		Amount:   decimal.NewFromInt(5000),
		Category: "Salary",
	}
}

func (suite *RecordServiceTestSuite) TestCreateRecord_Success() {
	expectedDraft := validDraft()
	expectedDraft.Type = domain.LedgerIncome
	stored := &domain.Record{ID: "r1", Type: domain.LedgerIncome}
	suite.mockRepo.On("AddRecord", suite.ctx, domain.LedgerIncome, expectedDraft).Return(stored, nil).Once()

	rec, err := suite.service.CreateRecord(suite.ctx, domain.LedgerIncome, validDraft())

	suite.Require().NoError(err)
	suite.Equal("r1", rec.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestCreateRecord_ForcesTypeAndDropsInvestmentType() {
	draft := validDraft()
	draft.Type = domain.LedgerInvestment
	draft.InvestmentType = "Stock"

	suite.mockRepo.On("AddRecord", suite.ctx, domain.LedgerExpense, mock.MatchedBy(func(d domain.RecordDraft) bool {
		return d.Type == domain.LedgerExpense && d.InvestmentType == ""
	})).Return(&domain.Record{ID: "r1"}, nil).Once()

	_, err := suite.service.CreateRecord(suite.ctx, domain.LedgerExpense, draft)
	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestCreateRecord_ValidationErrors() {
	tests := []struct {
		name   string
		ledger domain.LedgerType
		mutate func(d *domain.RecordDraft)
	}{
		{"unknown ledger", domain.LedgerType("savings"), func(d *domain.RecordDraft) {}},
		{"missing category", domain.LedgerIncome, func(d *domain.RecordDraft) { d.Category = "" }},
		{"bad date", domain.LedgerIncome, func(d *domain.RecordDraft) { d.Date = "01/02/2024" }},
		{"missing date", domain.LedgerIncome, func(d *domain.RecordDraft) { d.Date = "" }},
		{"negative amount", domain.LedgerIncome, func(d *domain.RecordDraft) { d.Amount = decimal.NewFromInt(-1) }},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			draft := validDraft()
			tt.mutate(&draft)
			_, err := suite.service.CreateRecord(suite.ctx, tt.ledger, draft)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "AddRecord", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RecordServiceTestSuite) TestCreateRecord_RepoError() {
	suite.mockRepo.On("AddRecord", suite.ctx, domain.LedgerIncome, mock.Anything).Return(nil, errors.New("disk full")).Once()

	rec, err := suite.service.CreateRecord(suite.ctx, domain.LedgerIncome, validDraft())
	suite.Error(err)
	suite.Nil(rec)
	suite.Contains(err.Error(), "disk full")
}

func (suite *RecordServiceTestSuite) TestListRecords_NilBecomesEmpty() {
	suite.mockRepo.On("ListRecords", suite.ctx, domain.LedgerExpense).Return(nil, nil).Once()

	records, err := suite.service.ListRecords(suite.ctx, domain.LedgerExpense)
	suite.Require().NoError(err)
	suite.NotNil(records)
	suite.Empty(records)
}

func (suite *RecordServiceTestSuite) TestUpdateRecord_NotFound() {
	category := "Rent"
	update := domain.RecordUpdate{ID: "missing", Category: &category}
	suite.mockRepo.On("UpdateRecord", suite.ctx, domain.LedgerExpense, update).Return(domain.MutationNotFound, nil).Once()

	result, err := suite.service.UpdateRecord(suite.ctx, domain.LedgerExpense, update)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal(domain.MutationNotFound, result)
}

func (suite *RecordServiceTestSuite) TestUpdateRecord_Validation() {
	badDate := "yesterday"
	_, err := suite.service.UpdateRecord(suite.ctx, domain.LedgerExpense, domain.RecordUpdate{ID: "r1", Date: &badDate})
	suite.ErrorIs(err, apperrors.ErrValidation)

	empty := ""
	_, err = suite.service.UpdateRecord(suite.ctx, domain.LedgerExpense, domain.RecordUpdate{ID: "r1", Category: &empty})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.UpdateRecord(suite.ctx, domain.LedgerExpense, domain.RecordUpdate{})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateRecord", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RecordServiceTestSuite) TestDeleteRecord_MissingIsNotAnError() {
	suite.mockRepo.On("DeleteRecord", suite.ctx, domain.LedgerIncome, "missing").Return(domain.MutationNotFound, nil).Once()

	result, err := suite.service.DeleteRecord(suite.ctx, domain.LedgerIncome, "missing")
	suite.NoError(err)
	suite.Equal(domain.MutationNotFound, result)
}

func TestRecordServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecordServiceTestSuite))
}
