package components

import (
	"hoteldesk/internal/infra/db"
	"hoteldesk/internal/infra/readstore"
	"hoteldesk/internal/infra/writerepo"
	"hoteldesk/internal/usecase/commands"
	"hoteldesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Write side
		fx.Annotate(
			writerepo.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			writerepo.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			writerepo.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			writerepo.NewCatalogRepository,
			fx.As(new(commands.CatalogRepository)),
		),
		fx.Annotate(
			writerepo.NewFinanceRepository,
			fx.As(new(commands.FinanceRepository)),
		),
		fx.Annotate(
			db.NewTxManager,
			fx.As(new(commands.TxManager)),
		),
		fx.Annotate(
			NewRepoFactory,
			fx.As(new(commands.RepoFactory)),
		),
		// Read side
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			readstore.NewFinanceReadStore,
			fx.As(new(queries.FinanceReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

// RepoFactory rebinds the write repositories to a transactional connection.
type RepoFactory struct{}

func NewRepoFactory() *RepoFactory {
	return &RepoFactory{}
}

func (f *RepoFactory) Reservations(dbtx db.DBTX) commands.ReservationRepository {
	return writerepo.NewReservationRepository(dbtx)
}

func (f *RepoFactory) Orders(dbtx db.DBTX) commands.OrderRepository {
	return writerepo.NewOrderRepository(dbtx)
}

func (f *RepoFactory) Finance(dbtx db.DBTX) commands.FinanceRepository {
	return writerepo.NewFinanceRepository(dbtx)
}
