package redis_client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/init-pkg/excel-users/internal/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// New returns nil when no address is configured.
func New(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) (*redis.Client, error) {
	rcfg := cfg.Infrastructure.Redis
	if rcfg.Addr == "" {
		log.Info("redis disabled")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     rcfg.Addr,
		Password: rcfg.Password,
		DB:       rcfg.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis %s: %w", rcfg.Addr, err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}
