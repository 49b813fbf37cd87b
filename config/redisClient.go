package config

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectRedis returns a client for rate limits and issue locks, or nil when
// REDIS_ADDRESS is unset and the in-process fallbacks should be used.
func ConnectRedis(cfg Config, logger *zap.Logger) (*redis.Client, error) {
	if cfg.RedisAddress == "" {
		logger.Warn("REDIS_ADDRESS not set, using in-process rate limits and locks")
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("connected to Redis", zap.String("address", cfg.RedisAddress))
	return client, nil
}
