package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/mtrack/internal/apperrors"
	portsrepo "github.com/SscSPs/mtrack/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mtrack/internal/core/ports/services"
)

type dataService struct {
	BaseService
	transfer portsrepo.DataTransfer
	stores   []portsrepo.Initializer
}

// NewDataService creates the export/import service. stores are re-initialised after an import.
func NewDataService(transfer portsrepo.DataTransfer, stores []portsrepo.Initializer) portssvc.DataSvc {
	return &dataService{transfer: transfer, stores: stores}
}

func (s *dataService) Export(ctx context.Context, destDir string) ([]string, error) {
	if strings.TrimSpace(destDir) == "" {
		return nil, apperrors.Validationf("destination directory is required")
	}
	files, err := s.transfer.Export(ctx, destDir)
	if err != nil {
		s.LogError(ctx, err, "Export failed", slog.String("dest", destDir))
		return nil, fmt.Errorf("failed to export data: %w", err)
	}
	return files, nil
}

func (s *dataService) Import(ctx context.Context, srcDir string) ([]string, error) {
	if strings.TrimSpace(srcDir) == "" {
		return nil, apperrors.Validationf("source directory is required")
	}
	files, err := s.transfer.Import(ctx, srcDir)
	if err != nil {
		s.LogError(ctx, err, "Import failed", slog.String("src", srcDir))
		return nil, fmt.Errorf("failed to import data: %w", err)
	}
	for _, store := range s.stores {
		if err := store.Initialize(ctx); err != nil {
			s.LogError(ctx, err, "Failed to reload store after import")
			return files, fmt.Errorf("failed to reload data after import: %w", err)
		}
	}
	s.LogInfo(ctx, "Data imported", slog.String("src", srcDir), slog.Int("files", len(files)))
	return files, nil
}
