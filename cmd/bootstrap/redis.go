package bootstrap

import (
	"context"
	"log/slog"

	"cellar-market/internal/infra/kvstore"
	"cellar-market/internal/pkg/config"
	"cellar-market/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
		fx.Annotate(
			kvstore.NewRedisOnceStore,
			fx.As(new(shared.OnceStore)),
		),
	),
)

// NewRedis does not fail startup when Redis is down. Bids and clearing
// degrade to running without the once-only guard.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	client := kvstore.NewRedisClient(cfg.Redis)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("redis unreachable at startup", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
