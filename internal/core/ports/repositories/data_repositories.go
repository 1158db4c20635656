package repositories

import (
	"context"
)

// DataTransfer copies the data files between the data directory and another directory.
type DataTransfer interface {
	// Export copies every data file present to destDir and returns the copied file names.
	Export(ctx context.Context, destDir string) ([]string, error)

	// Import copies the recognised data files found in srcDir over the data directory.
	// The source must contain at least one ledger file.
	Import(ctx context.Context, srcDir string) ([]string, error)
}
