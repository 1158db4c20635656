package filestore

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/SscSPs/mtrack/internal/apperrors"
	portsrepo "github.com/SscSPs/mtrack/internal/core/ports/repositories"
	"github.com/spf13/afero"
)

// dataFiles lists every file that makes up a data directory, ledgers first.
var dataFiles = []string{IncomeFile, ExpensesFile, InvestmentsFile, RulesFile, GoalsFile, SettingsFile}

// DirTransfer copies data files in and out of the data directory.
type DirTransfer struct {
	fs   afero.Fs
	dir  string
	opts options
}

func newDirTransfer(fs afero.Fs, dir string, opts ...Option) *DirTransfer {
	return &DirTransfer{fs: fs, dir: dir, opts: buildOptions(opts)}
}

var _ portsrepo.DataTransfer = (*DirTransfer)(nil)

// Export copies the data files present to destDir.
func (t *DirTransfer) Export(ctx context.Context, destDir string) ([]string, error) {
	if filepath.Clean(destDir) == filepath.Clean(t.dir) {
		return nil, apperrors.Validationf("export destination is the data directory")
	}
	if err := t.fs.MkdirAll(destDir, 0o755); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to create export directory", err)
	}
	copied, err := t.copyFiles(ctx, t.dir, destDir)
	if err != nil {
		return nil, err
	}
	t.opts.logger.InfoContext(ctx, "Exported data files",
		slog.String("dest", destDir),
		slog.Int("files", len(copied)))
	return copied, nil
}

// Import copies recognised data files from srcDir over the data directory. Stores must be
// initialised again afterwards to pick up the new content.
func (t *DirTransfer) Import(ctx context.Context, srcDir string) ([]string, error) {
	if filepath.Clean(srcDir) == filepath.Clean(t.dir) {
		return nil, apperrors.Validationf("import source is the data directory")
	}
	hasLedger := false
	for _, name := range dataFiles[:3] {
		ok, err := exists(t.fs, filepath.Join(srcDir, name))
		if err != nil {
			return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to read import directory", err)
		}
		hasLedger = hasLedger || ok
	}
	if !hasLedger {
		return nil, apperrors.Validationf("no ledger files found in %s", srcDir)
	}
	copied, err := t.copyFiles(ctx, srcDir, t.dir)
	if err != nil {
		return nil, err
	}
	t.opts.logger.InfoContext(ctx, "Imported data files",
		slog.String("src", srcDir),
		slog.Int("files", len(copied)))
	return copied, nil
}

func (t *DirTransfer) copyFiles(ctx context.Context, from, to string) ([]string, error) {
	copied := []string{}
	for _, name := range dataFiles {
		if err := ctx.Err(); err != nil {
			return copied, err
		}
		src := filepath.Join(from, name)
		ok, err := exists(t.fs, src)
		if err != nil {
			return copied, apperrors.NewAppError(http.StatusInternalServerError, "failed to stat "+src, err)
		}
		if !ok {
			continue
		}
		data, err := afero.ReadFile(t.fs, src)
		if err != nil {
			return copied, apperrors.NewAppError(http.StatusInternalServerError, "failed to read "+src, err)
		}
		if err := writeFileAtomic(t.fs, filepath.Join(to, name), data); err != nil {
			return copied, apperrors.NewAppError(http.StatusInternalServerError, fmt.Sprintf("failed to copy %s", name), err)
		}
		copied = append(copied, name)
	}
	return copied, nil
}
