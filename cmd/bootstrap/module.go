package bootstrap

import (
	"github.com/MAGNO9/SchoolTrack/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.RepositoryModule,
	components.StateModule,
	components.NotifyModule,
	components.UseCaseModule,
	components.StreamModule,
	components.HandlerModule,
)
