package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/chartmuseum/storage"
)

// ReportArchive captures the minimal operations the report service needs to
// keep rendered documents around for the seller.
type ReportArchive interface {
	Save(ctx context.Context, name string, data []byte) error
}

// LocalArchive stores rendered reports beneath a root directory.
type LocalArchive struct {
	backend storage.Backend
}

// NewLocalArchive builds a LocalArchive rooted at dir, creating it when
// missing.
func NewLocalArchive(dir string) (*LocalArchive, error) {
	if dir == "" {
		return nil, fmt.Errorf("archive directory must be provided")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory %s: %w", dir, err)
	}

	return &LocalArchive{
		backend: storage.NewLocalFilesystemBackend(dir),
	}, nil
}

// Save writes one rendered report under its document name.
func (a *LocalArchive) Save(_ context.Context, name string, data []byte) error {
	if err := a.backend.PutObject(name, data); err != nil {
		return fmt.Errorf("failed to archive report %s: %w", name, err)
	}
	return nil
}
