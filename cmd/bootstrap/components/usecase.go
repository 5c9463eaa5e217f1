package components

import (
	"github.com/MAGNO9/SchoolTrack/internal/pkg/clock"
	"github.com/MAGNO9/SchoolTrack/internal/usecase/commands"
	"github.com/MAGNO9/SchoolTrack/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		clock.NewRealClock,
		commands.NewLocationCommands,
		commands.NewCheckinCommands,
		commands.NewNoticeCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewLocationQueries,
		queries.NewETAQueries,
	),
)
