package components

import (
	"github.com/MAGNO9/SchoolTrack/internal/pkg/jwt"
	"github.com/MAGNO9/SchoolTrack/internal/stream"
	"github.com/MAGNO9/SchoolTrack/internal/usecase/commands"

	"go.uber.org/fx"
)

var StreamModule = fx.Module("stream",
	fx.Provide(
		stream.NewHub,
		func(h *stream.Hub) commands.Broadcaster { return h },
		func(s *jwt.Service) stream.TokenValidator { return s },
		stream.NewGate,
	),
)
