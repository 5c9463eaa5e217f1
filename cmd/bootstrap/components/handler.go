package components

import (
	"github.com/MAGNO9/SchoolTrack/internal/handler"
	"github.com/MAGNO9/SchoolTrack/internal/handler/api"
	"github.com/MAGNO9/SchoolTrack/internal/handler/middleware"
	"github.com/MAGNO9/SchoolTrack/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewLocationHandler,
		api.NewCheckinHandler,
		api.NewNotificationHandler,
		func(s *jwt.Service) middleware.TokenValidator { return s },
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
