package components

import (
	"campus-reservation/internal/infra/readstore"
	sqlc "campus-reservation/internal/infra/sqlc/generated"
	"campus-reservation/internal/infra/uow"
	"campus-reservation/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
			fx.As(new(queries.OccupancyReadStore)),
		),
		// Facility
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.FacilityReadQueries)),
		),
		fx.Annotate(
			readstore.NewFacilityReadStore,
			fx.As(new(queries.FacilityReadStore)),
		),
	),
)

// repositories are built per transaction inside the unit of work
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
