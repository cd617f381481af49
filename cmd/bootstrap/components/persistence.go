package components

import (
	"lendhub/internal/infra"
	"lendhub/internal/infra/readstore"
	"lendhub/internal/infra/repository"
	"lendhub/internal/infra/session"
	"lendhub/internal/infra/uow"
	"lendhub/internal/usecase/commands"
	"lendhub/internal/usecase/queries"
	"lendhub/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	uow.NewPostgresUoW,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewRequestReadStore,
			fx.As(new(queries.RequestReadStore)),
		),
		fx.Annotate(
			readstore.NewItemReadStore,
			fx.As(new(queries.ItemReadStore)),
		),
		fx.Annotate(
			readstore.NewReportReadStore,
			fx.As(new(queries.ReportReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(commands.AuthReadStore)),
		),
		fx.Annotate(
			readstore.NewCommandReads,
			fx.As(new(shared.CommandReads)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewRequestRepository,
			fx.As(new(shared.RequestRepository)),
		),
		fx.Annotate(
			repository.NewItemRepository,
			fx.As(new(shared.ItemRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(shared.UserRepository)),
		),
		func(store *session.Store) commands.SessionStore { return store },
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}
