package filestore

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// writeFileAtomic replaces path with data. The bytes go to a sibling temp file which is synced
// and then renamed over the target, so readers see either the old or the new content.
func writeFileAtomic(fs afero.Fs, path string, data []byte) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := afero.TempFile(fs, dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", base, err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			// Best effort; the target is untouched either way.
			_ = fs.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", base, err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", base, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", base, err)
	}
	if err = fs.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", base, err)
	}
	return nil
}

// exists reports whether path is present. Errors other than not-exist are returned.
func exists(fs afero.Fs, path string) (bool, error) {
	_, err := fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, afero.ErrFileNotFound) {
		return false, nil
	}
	return false, err
}
