package components

import (
	"pricewatch/internal/handler"
	"pricewatch/internal/handler/api"
	"pricewatch/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		func(cfg config.Config) config.ReportConfig {
			return cfg.Report
		},
		api.NewDiscountHandler,
	),
	fx.Invoke(handler.NewRouter),
)
