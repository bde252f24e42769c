package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/infra/cache"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/usecase/reminder"

	"go.uber.org/fx"
)

const lockKeyPrefix = "salon-booking:lock:"

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewLocker,
	),
)

// NewLocker coordinates reminder runs across replicas through Redis. Without
// REDIS_ADDR it falls back to an in-process locker, which is only correct for
// a single replica.
func NewLocker(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (reminder.Locker, error) {
	if cfg.Redis.Addr == "" {
		logger.Warn("REDIS_ADDR not set, using in-process reminder locks")
		return cache.NewMemoryLocker(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	logger.Info("redis locker ready", "addr", cfg.Redis.Addr)
	return cache.NewRedisLocker(client, lockKeyPrefix), nil
}
