package bootstrap

import (
	"context"
	"log/slog"

	"campus-reservation/internal/infra/scheduler"
	"campus-reservation/internal/pkg/config"
	"campus-reservation/internal/usecase/lifecycle"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

func StartScheduler(lc fx.Lifecycle, cfg config.Config, sweeper *lifecycle.Sweeper, relay *lifecycle.Relay) error {
	if !cfg.Scheduler.Enabled {
		slog.Info("scheduler disabled")
		return nil
	}

	sched, err := scheduler.NewFromConfig(cfg.Scheduler,
		func(ctx context.Context) error {
			_, err := sweeper.Sweep(ctx)
			return err
		},
		func(ctx context.Context) error {
			_, err := relay.RelayOnce(ctx)
			return err
		},
	)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sched.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			return sched.Shutdown()
		},
	})
	return nil
}
