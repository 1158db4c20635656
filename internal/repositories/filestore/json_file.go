package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/mtrack/internal/apperrors"
	"github.com/spf13/afero"
)

var errCorruptFile = errors.New("corrupt data file")

// jsonFile is a JSON document persisted with writeFileAtomic.
type jsonFile struct {
	fs   afero.Fs
	path string
	opts *options
}

// load decodes the document into v. It reports false when the file does not exist and
// wraps errCorruptFile when the content cannot be decoded.
func (f jsonFile) load(v any) (bool, error) {
	ok, err := exists(f.fs, f.path)
	if err != nil {
		return false, apperrors.NewAppError(http.StatusInternalServerError, "failed to stat "+f.path, err)
	}
	if !ok {
		return false, nil
	}
	data, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		return false, apperrors.NewAppError(http.StatusInternalServerError, "failed to read "+f.path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return true, fmt.Errorf("%w: %s: %v", errCorruptFile, f.path, err)
	}
	return true, nil
}

func (f jsonFile) save(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", f.path, err)
	}
	if err := writeFileAtomic(f.fs, f.path, data); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to write "+f.path, err)
	}
	return nil
}

// quarantine moves a damaged document aside so a fresh one can be written in its place.
func (f jsonFile) quarantine(cause error) error {
	dest := fmt.Sprintf("%s.corrupt-%d", f.path, f.opts.now().Unix())
	if err := f.fs.Rename(f.path, dest); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to move aside "+f.path, err)
	}
	f.opts.logger.Warn("Moved corrupt data file aside",
		slog.String("file", f.path),
		slog.String("moved_to", dest),
		slog.String("error", cause.Error()))
	return nil
}

// loadOrCreate loads v from disk. A missing file is created from v as given; a corrupt one is
// quarantined first and v is reset with reset before being written.
func (f jsonFile) loadOrCreate(v any, reset func()) error {
	found, err := f.load(v)
	switch {
	case errors.Is(err, errCorruptFile):
		if qerr := f.quarantine(err); qerr != nil {
			return qerr
		}
		reset()
		return f.save(v)
	case err != nil:
		return err
	case !found:
		return f.save(v)
	}
	return nil
}

