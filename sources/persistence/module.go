package persistence

import (
	"context"
	"okakbot/sources/tracing"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var Module = fx.Module("persistence",
	fx.Provide(
		NewRedisConfig, NewRedis,
	),

	fx.Invoke(func(redis *redis.Client, lc fx.Lifecycle, log *tracing.Logger) {
		if redis == nil {
			return
		}

		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := redis.Ping(ctx).Err(); err != nil {
					log.F("Failed to ping Redis", tracing.InnerError, err)
				} else {
					log.I("Redis connection verified")
				}
				return nil
			},
			OnStop: func(ctx context.Context) error {
				log.I("Closing Redis connection")
				return redis.Close()
			},
		})
	}),
)
