package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"rentgen/config"
	"rentgen/internal/domain/entity"
	logs "rentgen/internal/infra/log"
	"rentgen/internal/usecase"
	"rentgen/internal/usecase/impl"

	"github.com/pkg/errors"
)

func runValidate(ctx context.Context, dir string, asJSON bool, logLevel string) error {
	cfg := &config.Config{}
	cfg.Env.Log = config.Log{Pretty: true, Level: logLevel}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	report, err := impl.NewValidationService(logger).Validate(ctx, dir)
	if report == nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(report); encErr != nil {
			return errors.Wrap(encErr, "failed to encode report")
		}

		return err
	}

	printReport(report)

	return err
}

func printReport(report *usecase.ValidationReport) {
	fmt.Printf("Validating datasets in directory: %s\n", report.Root)

	for _, ds := range report.Datasets {
		fmt.Printf("\n%s\n", ds.Dir)

		for _, schema := range entity.Schemas {
			if rows, ok := ds.Rows[schema.Name]; ok {
				fmt.Printf("  %-18s %d rows\n", schema.Name, rows)
			}
		}

		if ds.Valid() {
			fmt.Println("  ✅ Validation passed!")

			continue
		}

		problems := append([]usecase.Problem(nil), ds.Problems...)
		sort.SliceStable(problems, func(i, j int) bool { return problems[i].File < problems[j].File })
		for _, p := range problems {
			fmt.Printf("  ❌ %s\n", p)
		}
		if ds.Omitted > 0 {
			fmt.Printf("  ... and %d more problems\n", ds.Omitted)
		}
	}
}
