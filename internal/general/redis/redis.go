package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"ride-management/internal/general/config"
	"ride-management/internal/general/logger"
)

// Redis wraps the go-redis client so dependents share one connection pool.
type Redis struct {
	Client *goredis.Client
}

// NewRedis connects to Redis and verifies connectivity with a bounded ping.
func NewRedis(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Redis, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	log.Info(ctx, "redis_connected", "Connected to Redis", map[string]any{"addr": cfg.Redis.Addr})

	return &Redis{Client: rdb}, nil
}

func (r *Redis) Close() error {
	return r.Client.Close()
}
