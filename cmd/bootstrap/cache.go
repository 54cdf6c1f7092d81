package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"campus-reservation/internal/infra/cache"
	"campus-reservation/internal/pkg/config"
	"campus-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

const connectTimeout = 10 * time.Second

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewOccupancyCache,
	),
)

// NewOccupancyCache falls back to no caching when Redis is disabled or down.
func NewOccupancyCache(lc fx.Lifecycle, cfg config.Config) shared.OccupancyCache {
	if !cfg.Redis.Enabled {
		return shared.NoopOccupancyCache{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		slog.Warn("redis unavailable, occupancy cache disabled", "error", err.Error())
		return shared.NoopOccupancyCache{}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	slog.Info("occupancy cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.AvailabilityTTL)
	return cache.NewOccupancyCache(client, cfg.Redis.AvailabilityTTL)
}
