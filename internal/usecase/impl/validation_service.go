package impl

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"sort"
	"strconv"
	"time"

	"rentgen/internal/domain/entity"
	domainerrors "rentgen/internal/domain/errors"
	"rentgen/internal/domain/generator"
	"rentgen/internal/infra/loader"
	"rentgen/internal/usecase"
	"rentgen/internal/util"

	"github.com/pkg/errors"
)

// problems kept per dataset; the rest are only counted
const maxProblemsPerDataset = 100

// validationService implements the ValidationUsecase interface.
type validationService struct {
	logger *slog.Logger
}

// NewValidationService creates a new validation service.
func NewValidationService(logger *slog.Logger) usecase.ValidationUsecase {
	return &validationService{logger: logger}
}

// Validate checks every dataset directory below root that carries a manifest.
func (s *validationService) Validate(ctx context.Context, root string) (*usecase.ValidationReport, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, "open dataset root %s", root)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%s is not a directory", root)
	}

	fsys := os.DirFS(root)
	dirs, err := loader.FindManifests(fsys)
	if err != nil {
		return nil, err
	}
	if len(dirs) == 0 {
		return nil, errors.Errorf("no %s found under %s", entity.ManifestFile, root)
	}

	report := &usecase.ValidationReport{Root: root}
	for _, dir := range dirs {
		start := time.Now()

		ds, err := s.validateDataset(ctx, fsys, dir)
		if err != nil {
			return nil, err
		}
		report.Datasets = append(report.Datasets, ds)

		s.logger.Info("Dataset checked",
			slog.String("dir", dir),
			slog.Int("problems", len(ds.Problems)+ds.Omitted),
			slog.String("duration", util.FormatDuration(time.Since(start))),
		)
	}

	if n := report.ProblemCount(); n > 0 {
		return report, errors.Wrapf(domainerrors.ErrDatasetInvalid, "%d problems found", n)
	}

	return report, nil
}

func (s *validationService) validateDataset(ctx context.Context, fsys fs.FS, dir string) (*usecase.DatasetReport, error) {
	report := &usecase.DatasetReport{Dir: dir, Rows: make(map[string]int, len(entity.Schemas))}
	c := newDatasetChecker(report)

	manifest, err := loader.LoadManifest(fsys, dir)
	if err != nil {
		c.problem(entity.ManifestFile, 0, "%v", err)

		return report, nil
	}
	if err := loader.Validate(manifest); err != nil {
		c.problem(entity.ManifestFile, 0, "%v", err)

		return report, nil
	}

	names := make([]string, 0, len(manifest.Files))
	for name := range manifest.Files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		meta := manifest.Files[name]
		if schema, ok := entity.SchemaByName(meta.Table); !ok {
			c.problem(name, 0, "unknown table %q", meta.Table)
		} else if meta.Columns != nil && !slices.Equal(meta.Columns, schema.Columns) {
			c.problem(name, 0, "manifest columns %v, want %v", meta.Columns, schema.Columns)
		}

		if err := loader.VerifyFile(fsys, dir, name, meta); err != nil {
			c.problem(name, 0, "%v", err)
		}
	}

	csvLoader := loader.NewCSVLoader(fsys)

	// Schemas order loads every referenced table before the tables pointing at it.
	for _, schema := range entity.Schemas {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "validation canceled")
		}

		name, meta, ok := loader.FileFor(manifest, schema.Name)
		if !ok {
			c.problem(entity.ManifestFile, 0, "table %s is not listed", schema.Name)

			continue
		}

		rows, err := csvLoader.LoadTable(dir, name, schema.Columns, c.rowCheck(schema.Name, name))
		report.Rows[schema.Name] = rows
		if err != nil {
			c.problem(name, 0, "%v", err)

			continue
		}
		if rows != meta.Rows {
			c.problem(name, 0, "%d rows, manifest lists %d", rows, meta.Rows)
		}

		if schema.Name == entity.TableHosts && len(c.guests)+len(c.hosts) != len(c.users) {
			c.problem(name, 0, "%d guests and %d hosts do not cover %d users", len(c.guests), len(c.hosts), len(c.users))
		}
	}

	return report, nil
}

type idSet map[string]struct{}

// datasetChecker accumulates the keys of referenced tables and the problems found.
type datasetChecker struct {
	report     *usecase.DatasetReport
	users      idSet
	guests     idSet
	hosts      idSet
	properties idSet
	bookings   idSet
}

func newDatasetChecker(report *usecase.DatasetReport) *datasetChecker {
	return &datasetChecker{
		report:     report,
		users:      idSet{},
		guests:     idSet{},
		hosts:      idSet{},
		properties: idSet{},
		bookings:   idSet{},
	}
}

func (c *datasetChecker) problem(file string, line int, format string, args ...any) {
	if len(c.report.Problems) >= maxProblemsPerDataset {
		c.report.Omitted++

		return
	}

	c.report.Problems = append(c.report.Problems, usecase.Problem{
		File:    file,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	})
}

func (c *datasetChecker) unique(set idSet, file string, line int, id string) {
	if _, dup := set[id]; dup {
		c.problem(file, line, "duplicate id %s", id)

		return
	}
	set[id] = struct{}{}
}

func (c *datasetChecker) ref(set idSet, kind, file string, line int, id string) {
	if _, ok := set[id]; !ok {
		c.problem(file, line, "unknown %s %s", kind, id)
	}
}

func (c *datasetChecker) gap(file string, line int, from, to string, maxDays int) {
	start, err := time.Parse(entity.DateLayout, from)
	if err != nil {
		c.problem(file, line, "invalid date %q", from)

		return
	}
	end, err := time.Parse(entity.DateLayout, to)
	if err != nil {
		c.problem(file, line, "invalid date %q", to)

		return
	}

	days := int(end.Sub(start).Hours() / 24)
	if days < 1 || days > maxDays {
		c.problem(file, line, "%s to %s spans %d days, want 1 to %d", from, to, days, maxDays)
	}
}

func (c *datasetChecker) timestamp(file string, line int, value string) {
	if _, err := time.Parse(entity.TimestampLayout, value); err != nil {
		c.problem(file, line, "invalid timestamp %q", value)
	}
}

func (c *datasetChecker) decimal(file string, line int, column, value string, lo, hi float64) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		c.problem(file, line, "invalid %s %q", column, value)

		return
	}
	if v < lo || v > hi {
		c.problem(file, line, "%s %s outside [%v, %v]", column, value, lo, hi)
	}
}

// rowCheck returns the per-row checks of table. Column positions follow entity.Schemas.
func (c *datasetChecker) rowCheck(table, file string) loader.RowFunc {
	seen := idSet{}

	switch table {
	case entity.TableUsers:
		return func(line int, r []string) error {
			c.unique(c.users, file, line, r[0])
			c.dateCell(file, line, r[4])

			return nil
		}
	case entity.TableGuests:
		return func(line int, r []string) error {
			c.unique(c.guests, file, line, r[0])
			c.ref(c.users, "user", file, line, r[0])

			return nil
		}
	case entity.TableHosts:
		return func(line int, r []string) error {
			c.unique(c.hosts, file, line, r[0])
			c.ref(c.users, "user", file, line, r[0])
			if _, both := c.guests[r[0]]; both {
				c.problem(file, line, "user %s is both guest and host", r[0])
			}

			return nil
		}
	case entity.TableProperties:
		return func(line int, r []string) error {
			c.unique(c.properties, file, line, r[0])
			c.ref(c.hosts, "host", file, line, r[7])
			c.decimal(file, line, "price", r[8], generator.MinPriceCents/100.0, generator.MaxPriceCents/100.0)

			return nil
		}
	case entity.TableBookings:
		return func(line int, r []string) error {
			c.unique(c.bookings, file, line, r[0])
			c.timestamp(file, line, r[1])
			c.gap(file, line, r[2], r[3], generator.MaxStayDays)
			c.ref(c.guests, "guest", file, line, r[4])
			c.ref(c.properties, "property", file, line, r[5])

			return nil
		}
	case entity.TablePromotions:
		return func(line int, r []string) error {
			c.unique(seen, file, line, r[0])
			c.gap(file, line, r[1], r[2], generator.MaxPromotionDays)
			c.decimal(file, line, "discount_rate", r[3], 0, generator.MaxDiscountRate)
			c.ref(c.properties, "property", file, line, r[5])

			return nil
		}
	case entity.TableAmenities:
		return func(line int, r []string) error {
			c.unique(seen, file, line, r[0])
			c.ref(c.properties, "property", file, line, r[3])

			return nil
		}
	case entity.TableReviews:
		return func(line int, r []string) error {
			c.unique(seen, file, line, r[0])
			c.ref(c.bookings, "booking", file, line, r[1])
			c.decimal(file, line, "rating", r[3], 0, generator.MaxRating)

			return nil
		}
	case entity.TableFavorites:
		return func(line int, r []string) error {
			if _, dup := seen[r[0]+"|"+r[1]]; dup {
				c.problem(file, line, "duplicate favorite %s/%s", r[1], r[0])
			}
			seen[r[0]+"|"+r[1]] = struct{}{}
			c.ref(c.properties, "property", file, line, r[0])
			c.ref(c.guests, "guest", file, line, r[1])

			return nil
		}
	case entity.TableMessages:
		return func(line int, r []string) error {
			c.unique(seen, file, line, r[0])
			c.ref(c.guests, "guest", file, line, r[1])
			c.ref(c.hosts, "host", file, line, r[2])
			c.timestamp(file, line, r[4])

			return nil
		}
	default:
		return func(int, []string) error { return nil }
	}
}

func (c *datasetChecker) dateCell(file string, line int, value string) {
	if _, err := time.Parse(entity.DateLayout, value); err != nil {
		c.problem(file, line, "invalid date %q", value)
	}
}
