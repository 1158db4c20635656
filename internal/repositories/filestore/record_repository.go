package filestore

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"sync"

	"github.com/SscSPs/mtrack/internal/apperrors"
	"github.com/SscSPs/mtrack/internal/core/domain"
	portsrepo "github.com/SscSPs/mtrack/internal/core/ports/repositories"
	"github.com/spf13/afero"
)

// CSVRecordRepository keeps the three ledgers as CSV files. Every mutation rewrites the
// whole ledger through writeFileAtomic while holding that ledger's lock.
type CSVRecordRepository struct {
	fs    afero.Fs
	dir   string
	opts  options
	locks map[domain.LedgerType]*sync.Mutex
}

// newCSVRecordRepository creates a new repository for ledger data.
func newCSVRecordRepository(fs afero.Fs, dir string, opts ...Option) *CSVRecordRepository {
	locks := make(map[domain.LedgerType]*sync.Mutex, len(domain.Ledgers))
	for _, l := range domain.Ledgers {
		locks[l] = &sync.Mutex{}
	}
	return &CSVRecordRepository{
		fs:    fs,
		dir:   dir,
		opts:  buildOptions(opts),
		locks: locks,
	}
}

var _ portsrepo.RecordRepositoryFacade = (*CSVRecordRepository)(nil)

func (r *CSVRecordRepository) path(ledger domain.LedgerType) string {
	return filepath.Join(r.dir, ledgerFileName(ledger))
}

func (r *CSVRecordRepository) lock(ledger domain.LedgerType) (func(), error) {
	mu, ok := r.locks[ledger]
	if !ok {
		return nil, apperrors.Validationf("unknown ledger %q", ledger)
	}
	mu.Lock()
	return mu.Unlock, nil
}

// Initialize creates the data directory and any missing ledger file with its header row.
func (r *CSVRecordRepository) Initialize(ctx context.Context) error {
	if err := r.fs.MkdirAll(r.dir, 0o755); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to create data directory", err)
	}
	for _, ledger := range domain.Ledgers {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.ensureLedger(ledger); err != nil {
			return err
		}
	}
	return nil
}

func (r *CSVRecordRepository) ensureLedger(ledger domain.LedgerType) error {
	unlock, err := r.lock(ledger)
	if err != nil {
		return err
	}
	defer unlock()

	path := r.path(ledger)
	ok, err := exists(r.fs, path)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to stat "+ledgerFileName(ledger), err)
	}
	if ok {
		return nil
	}
	data, err := encodeLedger(ledger, nil)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(r.fs, path, data); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to create ledger", err)
	}
	r.opts.logger.Info("Created ledger file", slog.String("file", path))
	return nil
}

// read loads a ledger without locking. A missing file holds no records.
func (r *CSVRecordRepository) read(ledger domain.LedgerType) ([]domain.Record, error) {
	path := r.path(ledger)
	ok, err := exists(r.fs, path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.Record{}, nil
	}
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return nil, err
	}
	return decodeLedger(ledger, data)
}

func (r *CSVRecordRepository) write(ledger domain.LedgerType, records []domain.Record) error {
	data, err := encodeLedger(ledger, records)
	if err != nil {
		return fmt.Errorf("failed to encode %s ledger: %w", ledger, err)
	}
	if err := writeFileAtomic(r.fs, r.path(ledger), data); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to write ledger", err)
	}
	return nil
}

// readForUpdate loads a ledger for a mutation. Unlike ListRecords it refuses a damaged file,
// which would otherwise be overwritten with an empty snapshot.
func (r *CSVRecordRepository) readForUpdate(ledger domain.LedgerType) ([]domain.Record, error) {
	records, err := r.read(ledger)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError,
			fmt.Sprintf("failed to read %s ledger", ledger), err)
	}
	return records, nil
}

// ListRecords retrieves every record of a ledger.
func (r *CSVRecordRepository) ListRecords(ctx context.Context, ledger domain.LedgerType) ([]domain.Record, error) {
	unlock, err := r.lock(ledger)
	if err != nil {
		return nil, err
	}
	defer unlock()

	records, err := r.read(ledger)
	if err != nil {
		r.opts.logger.WarnContext(ctx, "Failed to read ledger, returning no records",
			slog.String("ledger", string(ledger)),
			slog.String("file", r.path(ledger)),
			slog.String("error", err.Error()))
		return []domain.Record{}, nil
	}
	return records, nil
}

// ReadRecords is the strict form of ListRecords: a ledger that cannot be parsed is an error
// instead of an empty result.
func (r *CSVRecordRepository) ReadRecords(ctx context.Context, ledger domain.LedgerType) ([]domain.Record, error) {
	unlock, err := r.lock(ledger)
	if err != nil {
		return nil, err
	}
	defer unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.readForUpdate(ledger)
}

// AddRecord appends a new record to the ledger.
func (r *CSVRecordRepository) AddRecord(ctx context.Context, ledger domain.LedgerType, draft domain.RecordDraft) (*domain.Record, error) {
	unlock, err := r.lock(ledger)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records, err := r.readForUpdate(ledger)
	if err != nil {
		return nil, err
	}

	rec := domain.NewRecord(r.opts.newID(), ledger, draft, r.opts.now())
	for _, existing := range records {
		if existing.ID == rec.ID {
			return nil, fmt.Errorf("%w: record id %s", apperrors.ErrDuplicate, rec.ID)
		}
	}

	if err := r.write(ledger, append(records, rec)); err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpdateRecord merges the supplied fields over the record with the same id.
func (r *CSVRecordRepository) UpdateRecord(ctx context.Context, ledger domain.LedgerType, update domain.RecordUpdate) (domain.MutationResult, error) {
	unlock, err := r.lock(ledger)
	if err != nil {
		return "", err
	}
	defer unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	records, err := r.readForUpdate(ledger)
	if err != nil {
		return "", err
	}

	for i := range records {
		if records[i].ID != update.ID {
			continue
		}
		before := records[i]
		update.ApplyTo(&records[i])
		if recordsEqual(before, records[i]) {
			return domain.MutationUnchanged, nil
		}
		if err := r.write(ledger, records); err != nil {
			return "", err
		}
		return domain.MutationUpdated, nil
	}
	return domain.MutationNotFound, nil
}

// DeleteRecord removes the record with the given id.
func (r *CSVRecordRepository) DeleteRecord(ctx context.Context, ledger domain.LedgerType, id string) (domain.MutationResult, error) {
	unlock, err := r.lock(ledger)
	if err != nil {
		return "", err
	}
	defer unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	records, err := r.readForUpdate(ledger)
	if err != nil {
		return "", err
	}

	kept := records[:0]
	for _, rec := range records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(records) {
		return domain.MutationNotFound, nil
	}
	if err := r.write(ledger, kept); err != nil {
		return "", err
	}
	return domain.MutationUpdated, nil
}

func recordsEqual(a, b domain.Record) bool {
	return a.ID == b.ID &&
		a.Date == b.Date &&
		a.Amount.Equal(b.Amount) &&
		a.Category == b.Category &&
		a.Description == b.Description &&
		a.Type == b.Type &&
		a.Timestamp.Equal(b.Timestamp) &&
		a.InvestmentType == b.InvestmentType
}
