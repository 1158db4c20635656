package repositories

import (
	"context"

	"github.com/SscSPs/mtrack/internal/core/domain"
)

// RecordReader defines read operations for ledger data
type RecordReader interface {
	// ListRecords returns every record of a ledger. A damaged or unreadable ledger yields an
	// empty slice and a logged diagnostic, not an error.
	ListRecords(ctx context.Context, ledger domain.LedgerType) ([]domain.Record, error)

	// ReadRecords returns every record of a ledger and fails if the ledger cannot be parsed.
	ReadRecords(ctx context.Context, ledger domain.LedgerType) ([]domain.Record, error)
}

// RecordWriter defines write operations for ledger data
type RecordWriter interface {
	// AddRecord assigns an id and timestamp and rewrites the ledger.
	AddRecord(ctx context.Context, ledger domain.LedgerType, draft domain.RecordDraft) (*domain.Record, error)

	// UpdateRecord merges the update over the record with the same id.
	UpdateRecord(ctx context.Context, ledger domain.LedgerType, update domain.RecordUpdate) (domain.MutationResult, error)

	// DeleteRecord removes the record with the given id.
	DeleteRecord(ctx context.Context, ledger domain.LedgerType, id string) (domain.MutationResult, error)
}

// RecordRepositoryFacade combines all ledger repository interfaces
type RecordRepositoryFacade interface {
	Initializer
	RecordReader
	RecordWriter
}
