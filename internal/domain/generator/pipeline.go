package generator

import (
	"context"
	"log/slog"
	"time"

	"rentgen/internal/domain/entity"
	"rentgen/internal/domain/service"
	"rentgen/internal/errors"
	"rentgen/internal/util"
)

// Pipeline runs every generator in dependency order against one provider.
type Pipeline struct {
	provider service.Provider
	logger   *slog.Logger
}

// NewPipeline creates a pipeline drawing from provider.
func NewPipeline(provider service.Provider, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		provider: provider,
		logger:   logger,
	}
}

type stage struct {
	name string
	run  func(ds *entity.Dataset) (int, error)
}

// Run generates a complete dataset. The context is checked between stages only.
func (pl *Pipeline) Run(ctx context.Context, params entity.GenerationParams) (*entity.Dataset, error) {
	p := pl.provider
	ds := &entity.Dataset{}

	stages := []stage{
		{entity.TableUsers, func(ds *entity.Dataset) (n int, err error) {
			ds.Users, err = Users(p, params.Users)
			return len(ds.Users), err
		}},
		{"roles", func(ds *entity.Dataset) (n int, err error) {
			ds.Guests, ds.Hosts, err = SplitRoles(p, ds.Users, params.GuestProbability)
			return len(ds.Guests) + len(ds.Hosts), err
		}},
		{entity.TableProperties, func(ds *entity.Dataset) (n int, err error) {
			ds.Properties, err = Properties(p, params.Properties, ds.Hosts)
			return len(ds.Properties), err
		}},
		{entity.TableBookings, func(ds *entity.Dataset) (n int, err error) {
			ds.Bookings, err = Bookings(p, params.Bookings, ds.Guests, ds.Properties)
			return len(ds.Bookings), err
		}},
		{entity.TablePromotions, func(ds *entity.Dataset) (n int, err error) {
			ds.Promotions, err = Promotions(p, params.Promotions, ds.Properties)
			return len(ds.Promotions), err
		}},
		{entity.TableAmenities, func(ds *entity.Dataset) (n int, err error) {
			ds.Amenities, err = Amenities(p, params.Amenities, ds.Properties)
			return len(ds.Amenities), err
		}},
		{entity.TableReviews, func(ds *entity.Dataset) (n int, err error) {
			ds.Reviews, err = Reviews(p, params.Reviews, ds.Bookings)
			return len(ds.Reviews), err
		}},
		{entity.TableFavorites, func(ds *entity.Dataset) (n int, err error) {
			ds.Favorites, err = Favorites(p, ds.Guests, ds.Properties, params.FavoriteDensity)
			return len(ds.Favorites), err
		}},
		{entity.TableMessages, func(ds *entity.Dataset) (n int, err error) {
			ds.Messages, err = Messages(p, params.Messages, ds.Guests, ds.Hosts)
			return len(ds.Messages), err
		}},
	}

	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "generation canceled")
		}

		start := time.Now()
		n, err := st.run(ds)
		if err != nil {
			return nil, errors.Wrapf(err, "generate %s", st.name)
		}

		pl.logger.Info("Stage complete",
			slog.String("stage", st.name),
			slog.Int("rows", n),
			slog.String("duration", util.FormatDuration(time.Since(start))),
		)
	}

	return ds, nil
}
