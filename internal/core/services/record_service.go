package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/mtrack/internal/apperrors"
	"github.com/SscSPs/mtrack/internal/core/domain"
	portsrepo "github.com/SscSPs/mtrack/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mtrack/internal/core/ports/services"
	"github.com/SscSPs/mtrack/internal/utils/accounting"
)

// recordService implements the RecordSvcFacade interface
type recordService struct {
	BaseService
	recordRepo portsrepo.RecordRepositoryFacade
}

// NewRecordService creates a new record service.
func NewRecordService(repo portsrepo.RecordRepositoryFacade) portssvc.RecordSvcFacade {
	return &recordService{recordRepo: repo}
}

func checkLedger(ledger domain.LedgerType) error {
	if !ledger.Valid() {
		return apperrors.Validationf("unknown ledger %q", ledger)
	}
	return nil
}

func (s *recordService) ListRecords(ctx context.Context, ledger domain.LedgerType) ([]domain.Record, error) {
	if err := checkLedger(ledger); err != nil {
		return nil, err
	}
	records, err := s.recordRepo.ListRecords(ctx, ledger)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s records: %w", ledger, err)
	}
	if records == nil {
		return []domain.Record{}, nil
	}
	return records, nil
}

func (s *recordService) CreateRecord(ctx context.Context, ledger domain.LedgerType, draft domain.RecordDraft) (*domain.Record, error) {
	if err := checkLedger(ledger); err != nil {
		return nil, err
	}
	// The ledger decides the type; investment details only belong on investment records.
	draft.Type = ledger
	if ledger != domain.LedgerInvestment {
		draft.InvestmentType = ""
	}
	if err := s.ValidateStruct(draft); err != nil {
		return nil, err
	}
	if err := accounting.ValidateAmount(draft.Amount, true); err != nil {
		return nil, apperrors.Validationf("%v", err)
	}

	rec, err := s.recordRepo.AddRecord(ctx, ledger, draft)
	if err != nil {
		s.LogError(ctx, err, "Failed to add record", slog.String("ledger", string(ledger)))
		return nil, fmt.Errorf("failed to add %s record: %w", ledger, err)
	}
	s.LogInfo(ctx, "Record added", slog.String("ledger", string(ledger)), slog.String("record_id", rec.ID))
	return rec, nil
}

func (s *recordService) UpdateRecord(ctx context.Context, ledger domain.LedgerType, update domain.RecordUpdate) (domain.MutationResult, error) {
	if err := checkLedger(ledger); err != nil {
		return "", err
	}
	if update.ID == "" {
		return "", apperrors.Validationf("record id is required")
	}
	if update.Date != nil {
		if err := validate.Var(*update.Date, "required,datetime=2006-01-02"); err != nil {
			return "", apperrors.Validationf("date must be a date in 2006-01-02 format")
		}
	}
	if update.Category != nil && *update.Category == "" {
		return "", apperrors.Validationf("category must not be empty")
	}
	if update.Amount != nil {
		if err := accounting.ValidateAmount(*update.Amount, true); err != nil {
			return "", apperrors.Validationf("%v", err)
		}
	}

	result, err := s.recordRepo.UpdateRecord(ctx, ledger, update)
	if err != nil {
		s.LogError(ctx, err, "Failed to update record", slog.String("ledger", string(ledger)), slog.String("record_id", update.ID))
		return "", fmt.Errorf("failed to update %s record: %w", ledger, err)
	}
	if result == domain.MutationNotFound {
		return result, fmt.Errorf("%w: record %s", apperrors.ErrNotFound, update.ID)
	}
	return result, nil
}

func (s *recordService) DeleteRecord(ctx context.Context, ledger domain.LedgerType, id string) (domain.MutationResult, error) {
	if err := checkLedger(ledger); err != nil {
		return "", err
	}
	result, err := s.recordRepo.DeleteRecord(ctx, ledger, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete record", slog.String("ledger", string(ledger)), slog.String("record_id", id))
		return "", fmt.Errorf("failed to delete %s record: %w", ledger, err)
	}
	if result == domain.MutationNotFound {
		s.LogDebug(ctx, "Delete of unknown record ignored", slog.String("record_id", id))
	}
	return result, nil
}
