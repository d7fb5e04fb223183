package usecase

import (
	"context"
	"time"

	"rentgen/internal/domain/entity"
)

// GenerateResult summarises a finished generation run
type GenerateResult struct {
	Dir      string                         `json:"dir"`
	Seed     int64                          `json:"seed"`
	RunID    string                         `json:"run_id"`
	Counts   map[string]int                 `json:"counts"`
	Files    map[string]entity.FileMetadata `json:"files"`
	Bytes    int64                          `json:"bytes"`
	Duration time.Duration                  `json:"duration"`
}

// DatasetUsecase defines the interface for generating and exporting datasets
type DatasetUsecase interface {
	// Generate builds every record list and exports them, plus the manifest when enabled.
	// The first failing stage aborts the run.
	Generate(ctx context.Context) (*GenerateResult, error)
}
