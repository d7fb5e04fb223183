package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"time"

	"rentgen/config"
	"rentgen/internal/domain/entity"
	"rentgen/internal/domain/service"
	"rentgen/internal/infra/auth"
	"rentgen/internal/infra/export"
	"rentgen/internal/infra/fake"
	logs "rentgen/internal/infra/log"
	"rentgen/internal/usecase"
	"rentgen/internal/usecase/impl"
	"rentgen/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

func runGenerate(ctx context.Context, flags *generateFlags) error {
	cfg, err := config.New(*flags.config)
	if err != nil {
		return err
	}
	if err := applyOverrides(cfg, flags); err != nil {
		return err
	}

	var (
		uc     usecase.DatasetUsecase
		logger *slog.Logger
	)
	app := fx.New(
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(
			func() context.Context { return ctx },
			logs.New,
			newRunInfo,
			newProvider,
			auth.NewBcryptHasher,
			export.NewDatasetWriter,
			impl.NewDatasetService,
		),
		fx.Populate(&uc, &logger),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to assemble generator")
	}

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start generator")
	}

	result, runErr := uc.Generate(ctx)

	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		runErr = errors.Wrap(err, "failed to close output")
	}
	if runErr != nil {
		return runErr
	}

	logger.Info("Generation finished",
		slog.String("dir", result.Dir),
		slog.Int64("seed", result.Seed),
		slog.String("run_id", result.RunID),
	)
	fmt.Printf("Dataset written to %s (%s, %d files, %s)\n",
		result.Dir, util.FormatBytes(result.Bytes), len(result.Files), util.FormatDuration(result.Duration))

	return nil
}

// applyOverrides copies the flags given on the command line over the loaded config.
func applyOverrides(cfg *config.Config, flags *generateFlags) error {
	set := map[string]bool{}
	flags.cmd.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["seed"] {
		cfg.Generation.Seed = *flags.seed
	}
	if set["scale"] {
		cfg.Generation.Scale = *flags.scale
	}
	if set["output"] {
		cfg.Export.Output = *flags.output
	}
	if set["suffix"] {
		cfg.Export.SizeSuffix = *flags.suffix
	}
	if set["compression"] {
		cfg.Export.Compression = *flags.compression
	}
	if set["create-dir"] {
		cfg.Export.CreateDir = *flags.createDir
	}

	return config.Validate(cfg)
}

// newRunInfo resolves the seed and reference time of this run.
func newRunInfo(cfg *config.Config) (entity.RunInfo, error) {
	seed := cfg.Generation.Seed
	if seed == 0 {
		seed = fake.NewSeed()
	}

	ref, err := cfg.ReferenceTime(time.Now())
	if err != nil {
		return entity.RunInfo{}, err
	}

	return entity.RunInfo{Seed: seed, ReferenceTime: ref}, nil
}

func newProvider(run entity.RunInfo) service.Provider {
	return fake.NewProvider(run.Seed, run.ReferenceTime)
}
