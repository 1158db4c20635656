package repositories

import (
	"context"
)

// Initializer is implemented by stores that must prepare their backing file before use.
type Initializer interface {
	// Initialize ensures the backing file exists and loads it. It is safe to call more than once.
	Initialize(ctx context.Context) error
}
