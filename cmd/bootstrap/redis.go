package bootstrap

import (
	"context"

	"toolshare/internal/infra/cache"
	"toolshare/internal/pkg/config"
	"toolshare/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		fx.Annotate(
			func(rdb *redis.Client, cfg config.Config) *cache.IdempotencyStore {
				return cache.NewIdempotencyStore(rdb, cfg.Redis.IdempotencyTTL)
			},
			fx.As(new(shared.IdempotencyStore)),
		),
		fx.Annotate(
			cache.NewTokenDenylist,
			fx.As(new(shared.TokenDenylist)),
		),
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	rdb, cleanup, err := cache.Connect(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return rdb, nil
}
