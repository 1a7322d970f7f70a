package components

import (
	"log/slog"

	"pricewatch/internal/domain/discount"
	"pricewatch/internal/domain/pricing"
	"pricewatch/internal/pkg/clock"
	"pricewatch/internal/pkg/config"
	"pricewatch/internal/usecase/queries"
	"pricewatch/internal/usecase/reportcache"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *pricing.Parser {
		return pricing.NewParser(cfg.Report.ZeroCostTokens)
	},
	discount.NewDetector,
	func(cfg config.Config) *reportcache.Cache {
		return reportcache.New(cfg.Report.CacheRefresh)
	},
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		func(
			snapshots queries.SnapshotReadStore,
			items queries.ItemReadStore,
			detector *discount.Detector,
			clk clock.Clock,
			cfg config.Config,
			logger *slog.Logger,
		) queries.DiscountQueries {
			return queries.NewDiscountQueries(snapshots, items, detector, clk, cfg.Report.Workers, logger)
		},
	),
)
