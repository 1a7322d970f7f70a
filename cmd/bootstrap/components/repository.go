package components

import (
	"pricewatch/internal/infra/readstore"
	"pricewatch/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			readstore.NewSnapshotReadStore,
			fx.As(new(queries.SnapshotReadStore)),
		),
		fx.Annotate(
			readstore.NewItemReadStore,
			fx.As(new(queries.ItemReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) readstore.DBTX {
	return pool
}
