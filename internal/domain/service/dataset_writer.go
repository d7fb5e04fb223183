package service

import (
	"context"

	"rentgen/internal/domain/entity"
)

// DatasetWriter persists exported tables and the manifest describing them.
type DatasetWriter interface {
	// WriteTable serializes table into dir and reports what was written.
	WriteTable(ctx context.Context, dir, suffix string, table entity.Table) (*entity.FileMetadata, string, error)

	// WriteManifest stores manifest as dir/manifest.json.
	WriteManifest(ctx context.Context, dir string, manifest *entity.Manifest) error

	// Compression names the encoding applied to table files.
	Compression() string
}
