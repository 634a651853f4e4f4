package components

import (
	"context"
	"log/slog"

	"consultation-booking/internal/infra/cache"
	"consultation-booking/internal/pkg/config"
	"consultation-booking/internal/pkg/metrics"
	"consultation-booking/internal/usecase/commands"
	"consultation-booking/internal/usecase/monitor"
	"consultation-booking/internal/usecase/outbox"
	"consultation-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(commands.LifecycleMetrics)),
			fx.As(new(monitor.Metrics)),
			fx.As(new(outbox.Metrics)),
		),
		fx.Annotate(
			NewStatusCache,
			fx.As(fx.Self()),
			fx.As(new(commands.StatusInvalidator)),
		),
	),
)

// NewStatusCache uses Redis when configured and a no-op cache otherwise.
func NewStatusCache(lc fx.Lifecycle, cfg config.Config) (queries.StatusCache, error) {
	if !cfg.Redis.Enabled() {
		slog.Info("redis not configured, status cache disabled")
		return cache.NoopStatusCache{}, nil
	}

	client, cleanup, err := cache.Connect(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return cache.NewRedisStatusCache(client, cfg.Redis.StatusCacheTTL), nil
}
