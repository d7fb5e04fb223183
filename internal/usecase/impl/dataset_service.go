// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"rentgen/config"
	"rentgen/internal/domain/entity"
	"rentgen/internal/domain/generator"
	"rentgen/internal/domain/service"
	"rentgen/internal/usecase"
	"rentgen/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// users hashed between context checks
const hashCheckInterval = 1024

// datasetService implements the DatasetUsecase interface.
type datasetService struct {
	cfg      *config.Config
	run      entity.RunInfo
	provider service.Provider
	writer   service.DatasetWriter
	hasher   service.PasswordHasher
	logger   *slog.Logger
	now      func() time.Time
}

// DatasetServiceParams holds dependencies for DatasetService, injected by Fx.
type DatasetServiceParams struct {
	fx.In

	Config   *config.Config
	Run      entity.RunInfo
	Provider service.Provider
	Writer   service.DatasetWriter
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewDatasetService creates a new dataset service.
func NewDatasetService(params DatasetServiceParams) usecase.DatasetUsecase {
	return &datasetService{
		cfg:      params.Config,
		run:      params.Run,
		provider: params.Provider,
		writer:   params.Writer,
		hasher:   params.Hasher,
		logger:   params.Logger,
		now:      time.Now,
	}
}

// Generate runs the generators, then exports every table and the manifest.
func (s *datasetService) Generate(ctx context.Context) (*usecase.GenerateResult, error) {
	start := s.now()
	params := s.cfg.Params()
	suffix := s.cfg.Suffix()

	s.logger.Info("Generating dataset",
		slog.Int64("seed", s.run.Seed),
		slog.Time("reference_time", s.run.ReferenceTime),
		slog.Int("scale", s.cfg.Generation.Scale),
		slog.String("suffix", suffix),
	)

	ds, err := generator.NewPipeline(s.provider, s.logger).Run(ctx, params)
	if err != nil {
		return nil, err
	}

	if params.HashPasswords {
		if err := s.hashPasswords(ctx, ds.Users); err != nil {
			return nil, err
		}
	}

	dir := entity.DatasetDir(suffix)
	files, total, err := s.export(ctx, dir, suffix, ds)
	if err != nil {
		return nil, err
	}

	result := &usecase.GenerateResult{
		Dir:    dir,
		Seed:   s.run.Seed,
		Counts: ds.Counts(),
		Files:  files,
		Bytes:  total,
	}

	if s.cfg.Export.Manifest {
		manifest := &entity.Manifest{
			Version:       entity.ManifestVersion,
			RunID:         uuid.NewString(),
			Seed:          s.run.Seed,
			ReferenceTime: s.run.ReferenceTime,
			GeneratedAt:   s.now().UTC(),
			SizeSuffix:    suffix,
			Compression:   s.writer.Compression(),
			Parameters:    params,
			Files:         files,
		}
		if err := s.writer.WriteManifest(ctx, dir, manifest); err != nil {
			return nil, err
		}
		result.RunID = manifest.RunID
	}

	result.Duration = s.now().Sub(start)

	s.logger.Info("Dataset written",
		slog.String("dir", dir),
		slog.Int("files", len(files)),
		slog.String("size", util.FormatBytes(total)),
		slog.String("duration", util.FormatDuration(result.Duration)),
	)

	return result, nil
}

func (s *datasetService) export(ctx context.Context, dir, suffix string, ds *entity.Dataset) (map[string]entity.FileMetadata, int64, error) {
	files := make(map[string]entity.FileMetadata, len(entity.Schemas))
	var total int64

	for _, table := range ds.Tables() {
		if err := ctx.Err(); err != nil {
			return nil, 0, errors.Wrap(err, "export canceled")
		}

		meta, name, err := s.writer.WriteTable(ctx, dir, suffix, table)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "export %s", table.Name)
		}

		files[name] = *meta
		total += meta.SizeBytes

		s.logger.Info("Table exported",
			slog.String("file", name),
			slog.Int("rows", meta.Rows),
			slog.String("size", util.FormatBytes(meta.SizeBytes)),
		)
	}

	return files, total, nil
}

// hashPasswords replaces every plaintext password with its hash, in place.
func (s *datasetService) hashPasswords(ctx context.Context, users []entity.User) error {
	start := s.now()

	for i := range users {
		if i%hashCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return errors.Wrap(err, "password hashing canceled")
			}
		}

		hash, err := s.hasher.Hash(users[i].Password)
		if err != nil {
			return errors.Wrapf(err, "hash password of %s", users[i].ID)
		}
		users[i].Password = hash
	}

	s.logger.Info("Passwords hashed",
		slog.Int("users", len(users)),
		slog.String("duration", util.FormatDuration(s.now().Sub(start))),
	)

	return nil
}
