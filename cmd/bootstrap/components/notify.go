package components

import (
	"context"
	"log/slog"

	"github.com/MAGNO9/SchoolTrack/internal/notify"
	"github.com/MAGNO9/SchoolTrack/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewSenders,
		notify.NewDispatcher,
		func(d *notify.Dispatcher) commands.JobEnqueuer { return d },
	),
	fx.Invoke(RunDispatcher),
)

func NewSenders(logger *slog.Logger) []notify.Sender {
	return []notify.Sender{
		notify.NewPushSender(logger),
		notify.NewEmailSender(logger),
		notify.NewSMSSender(logger),
	}
}

// RunDispatcher ties the dispatcher loop to the application lifecycle.
func RunDispatcher(lc fx.Lifecycle, d *notify.Dispatcher) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go d.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
