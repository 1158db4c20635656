package filestore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/SscSPs/mtrack/internal/apperrors"
	"github.com/gofrs/flock"
)

// LockFile is the advisory lock file created in the data directory.
const LockFile = ".mtrack.lock"

// DataDirLock is held for as long as a process owns a data directory.
type DataDirLock struct {
	fl *flock.Flock
}

// LockDataDir takes a non-blocking exclusive lock on dir. It returns apperrors.ErrLocked if
// another process already holds it.
func LockDataDir(dir string) (*DataDirLock, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	fl := flock.New(filepath.Join(dir, LockFile))
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock data directory %s: %w", dir, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrLocked, dir)
	}
	return &DataDirLock{fl: fl}, nil
}

// Release gives up the lock.
func (l *DataDirLock) Release() error {
	return l.fl.Unlock()
}
