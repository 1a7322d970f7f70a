package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pricewatch/internal/pkg/clock"
	"pricewatch/internal/pkg/config"
	"pricewatch/internal/pkg/errs"
	"pricewatch/internal/usecase/queries"
	"pricewatch/internal/usecase/reportcache"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartReportRefresher),
)

// StartReportRefresher keeps the default bulk report warm so the hot
// endpoint serves from memory between refreshes.
func StartReportRefresher(
	lc fx.Lifecycle,
	cfg config.Config,
	q queries.DiscountQueries,
	cache *reportcache.Cache,
	clk clock.Clock,
	logger *slog.Logger,
) error {
	opts := queries.ReportOptions{
		Window: time.Duration(cfg.Report.LookbackDays) * 24 * time.Hour,
		Limit:  cfg.Report.ResultCap,
	}

	refresh := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		rows, err := q.Report(ctx, opts)
		if err != nil {
			if errs.Is(err, errs.ErrNoComparisonData) {
				logger.Info("report refresh skipped: not enough capture dates yet")
				return
			}
			logger.Error("report refresh failed", "error", err)
			return
		}
		cache.Put(rows, clk.Now())
		logger.Info("report refreshed", "rows", len(rows))
	}

	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", cfg.Report.CacheRefresh), refresh); err != nil {
		return fmt.Errorf("failed to schedule report refresh: %w", err)
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go refresh() // warm once at startup
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			stopped := c.Stop()
			select {
			case <-stopped.Done():
			case <-ctx.Done():
			}
			return nil
		},
	})

	return nil
}
