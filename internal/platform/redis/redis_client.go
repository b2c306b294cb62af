// Package redis connects the optional Redis instance used for caching.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const pingTimeout = 3 * time.Second

// NewRedisClient connects to addr and verifies the connection. An empty addr
// means Redis is not configured and returns (nil, nil).
func NewRedisClient(ctx context.Context, addr, password string, log *zap.Logger) (*redis.Client, error) {
	if addr == "" {
		log.Info("Redis not configured, caching disabled")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		log.Error("Redis connection failed", zap.String("address", addr), zap.Error(err))
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	log.Info("Redis connection successful", zap.String("address", addr))
	return rdb, nil
}
