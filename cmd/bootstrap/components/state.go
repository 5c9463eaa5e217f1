package components

import (
	"github.com/MAGNO9/SchoolTrack/internal/state"

	"go.uber.org/fx"
)

var StateModule = fx.Module("state",
	fx.Provide(
		state.NewStore,
	),
)
