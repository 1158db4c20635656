package services

import (
	"context"

	"github.com/SscSPs/mtrack/internal/core/domain"
)

// RecordReaderSvc defines read operations for ledger records
type RecordReaderSvc interface {
	ListRecords(ctx context.Context, ledger domain.LedgerType) ([]domain.Record, error)
}

// RecordWriterSvc defines write operations for ledger records
type RecordWriterSvc interface {
	// CreateRecord validates the draft and stores it in the given ledger.
	CreateRecord(ctx context.Context, ledger domain.LedgerType, draft domain.RecordDraft) (*domain.Record, error)

	// UpdateRecord merges the update over an existing record. Returns apperrors.ErrNotFound if
	// no record has the id.
	UpdateRecord(ctx context.Context, ledger domain.LedgerType, update domain.RecordUpdate) (domain.MutationResult, error)

	// DeleteRecord removes a record. Deleting a missing id is not an error.
	DeleteRecord(ctx context.Context, ledger domain.LedgerType, id string) (domain.MutationResult, error)
}

// RecordSvcFacade combines all record-related service interfaces
type RecordSvcFacade interface {
	RecordReaderSvc
	RecordWriterSvc
}
