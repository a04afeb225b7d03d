package cache

import (
	"context"
	"fmt"

	"wesion-bff/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

// NewCache connects to Redis and verifies the connection. Callers treat a nil
// client as "Redis not available" and fall back to in-memory storage.
func NewCache(ctx context.Context, addr, username, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis ping failed")
		return nil, fmt.Errorf("redis not reachable at %s: %w", addr, err)
	}
	return client, nil
}
