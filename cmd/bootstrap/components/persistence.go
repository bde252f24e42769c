package components

import (
	"salon-booking/internal/infra/readstore"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/infra/uow"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/reminder"
	"salon-booking/internal/usecase/shared"

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
		// Service
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ServiceReadQueries)),
		),
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceReadStore)),
		),
		// Appointment
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AppointmentViewQueries)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
			fx.As(new(reminder.AppointmentFinder)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

// Write repositories are created per transaction by the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
		func(u shared.UnitOfWork) shared.CommandReads { return u.CommandReads() },
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
