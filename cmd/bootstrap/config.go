package bootstrap

import (
	"github.com/MAGNO9/SchoolTrack/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.StreamConfig { return cfg.Stream },
		func(cfg config.Config) config.DispatcherConfig { return cfg.Dispatcher },
		func(cfg config.Config) config.RoutingConfig { return cfg.Routing },
	),
)
