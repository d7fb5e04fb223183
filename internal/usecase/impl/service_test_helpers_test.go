package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"rentgen/config"
	"rentgen/internal/domain/entity"
	"rentgen/internal/infra/auth"
	"rentgen/internal/infra/export"
	"rentgen/internal/infra/fake"
	"rentgen/internal/usecase"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var referenceTime = time.Date(2024, time.October, 18, 9, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestConfig yields 10*scale users and proportional counts of everything else.
func newTestConfig(output string, scale int) *config.Config {
	return &config.Config{
		Generation: &config.GenerationConfig{
			Seed:  7,
			Scale: scale,
			Ratios: config.Ratios{
				Users:      10,
				Properties: 2,
				Bookings:   5,
				Promotions: 1,
				Amenities:  5,
				Reviews:    2,
				Messages:   2,
			},
			GuestProbability: 0.6,
			FavoriteDensity:  1,
		},
		Export: &config.ExportConfig{
			Output:      output,
			Compression: config.CompressionNone,
			Manifest:    true,
		},
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
	}
}

// generateInto runs a full generation into root through the blob exporter.
func generateInto(t *testing.T, cfg *config.Config, seed int64) *usecase.GenerateResult {
	t.Helper()

	ctx := context.Background()
	bucket, err := export.OpenBucket(ctx, cfg.Export.Output, false)
	require.NoError(t, err)
	defer func() { require.NoError(t, bucket.Close()) }()

	run := entity.RunInfo{Seed: seed, ReferenceTime: referenceTime}
	svc := NewDatasetService(DatasetServiceParams{
		Config:   cfg,
		Run:      run,
		Provider: fake.NewProvider(run.Seed, run.ReferenceTime),
		Writer:   export.NewTableWriter(bucket, cfg.Export.Compression, newDiscardLogger()),
		Hasher:   auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		Logger:   newDiscardLogger(),
	})

	result, err := svc.Generate(ctx)
	require.NoError(t, err)

	return result
}

// exportDataset writes ds and a matching manifest under root/data<suffix>.
func exportDataset(t *testing.T, root, suffix string, ds *entity.Dataset) {
	t.Helper()

	ctx := context.Background()
	bucket, err := export.OpenBucket(ctx, root, false)
	require.NoError(t, err)
	defer func() { require.NoError(t, bucket.Close()) }()

	writer := export.NewTableWriter(bucket, config.CompressionNone, newDiscardLogger())
	dir := entity.DatasetDir(suffix)

	files := map[string]entity.FileMetadata{}
	for _, table := range ds.Tables() {
		meta, name, err := writer.WriteTable(ctx, dir, suffix, table)
		require.NoError(t, err)
		files[name] = *meta
	}

	require.NoError(t, writer.WriteManifest(ctx, dir, &entity.Manifest{
		Version:     entity.ManifestVersion,
		RunID:       "test",
		SizeSuffix:  suffix,
		Compression: config.CompressionNone,
		Files:       files,
	}))
}
