package bootstrap

import (
	"context"
	"log/slog"

	"toolshare/internal/jobs"
	"toolshare/internal/pkg/config"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		jobs.NewScheduler,
	),
	fx.Invoke(registerScheduler),
)

func registerScheduler(lc fx.Lifecycle, cfg config.Config, scheduler *jobs.Scheduler, logger *slog.Logger) {
	if !cfg.Jobs.Enabled {
		logger.Info("cron jobs disabled")
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			scheduler.Stop(ctx)
			return nil
		},
	})
}
