package components

import (
	"meetbook/internal/infra/db"
	"meetbook/internal/infra/meetings"
	"meetbook/internal/infra/readstore"
	repo_impl "meetbook/internal/infra/repository"
	"meetbook/internal/usecase/commands"
	"meetbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			repo_impl.NewCredentialRepository,
			fx.As(new(meetings.CredentialStore)),
		),
		// Read-side repository for queries
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
