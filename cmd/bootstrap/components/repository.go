package components

import (
	"github.com/MAGNO9/SchoolTrack/internal/handler/middleware"
	"github.com/MAGNO9/SchoolTrack/internal/infra/repository"
	"github.com/MAGNO9/SchoolTrack/internal/infra/routing"
	"github.com/MAGNO9/SchoolTrack/internal/infra/uow"
	"github.com/MAGNO9/SchoolTrack/internal/notify"
	"github.com/MAGNO9/SchoolTrack/internal/stream"
	"github.com/MAGNO9/SchoolTrack/internal/usecase/commands"
	"github.com/MAGNO9/SchoolTrack/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewLocationRepository,
			fx.As(new(commands.SampleWriter)),
			fx.As(new(queries.SampleReader)),
		),
		fx.Annotate(
			repository.NewVehicleRepository,
			fx.As(new(commands.VehicleReader)),
		),
		fx.Annotate(
			func(pool *pgxpool.Pool) *repository.StudentRepository {
				return repository.NewStudentRepository(pool)
			},
			fx.As(new(commands.StudentReader)),
			fx.As(new(queries.StudentReader)),
		),
		fx.Annotate(
			uow.NewCheckinUoW,
			fx.As(new(commands.CheckinUnitOfWork)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.GuardianReader)),
			fx.As(new(notify.TargetReader)),
			fx.As(new(stream.UserReader)),
			fx.As(new(middleware.UserReader)),
		),
		fx.Annotate(
			routing.NewGraphHopperClient,
			fx.As(new(queries.RoutingProvider)),
		),
	),
)
