package bootstrap

import (
	"context"

	"lendhub/internal/infra/redisconn"
	"lendhub/internal/infra/session"
	"lendhub/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		func(rdb *redis.Client, cfg config.Config) *session.Store {
			return session.NewStore(rdb, cfg.Redis.SessionTTL)
		},
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	rdb, cleanup, err := redisconn.Connect(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return rdb, nil
}
