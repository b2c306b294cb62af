// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"bookmark_backend/internal/feature/admin/domain/entity"
	"bookmark_backend/internal/feature/admin/usecase"
)

const (
	defaultStatsTTL       = 30 * time.Second
	defaultStatsNamespace = "stats"
)

// CachingStatsRepository decorates a StatsRepository with a Redis
// read-through cache. Redis failures never fail a request; the inner
// repository answers instead.
type CachingStatsRepository struct {
	inner     usecase.StatsRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
	log       *zap.Logger
}

var _ usecase.StatsRepository = (*CachingStatsRepository)(nil)

// NewCachingStatsRepository wraps inner. A nil rdb disables caching. If ttl
// is not positive it defaults to 30 seconds; an empty namespace means "stats".
func NewCachingStatsRepository(rdb *redis.Client, ttl time.Duration, inner usecase.StatsRepository, namespace string, log *zap.Logger) *CachingStatsRepository {
	if ttl <= 0 {
		ttl = defaultStatsTTL
	}
	if namespace == "" {
		namespace = defaultStatsNamespace
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CachingStatsRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
		log:       log,
	}
}

// Stats returns the cached aggregates when present, otherwise computes and
// stores them.
func (c *CachingStatsRepository) Stats(ctx context.Context) (*entity.Stats, error) {
	if c.rdb == nil {
		return c.inner.Stats(ctx)
	}

	key := c.key()

	b, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil && len(b) > 0:
		var out entity.Stats
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// corrupted entry
		_ = c.rdb.Del(ctx, key).Err()
	case err != nil && !errors.Is(err, redis.Nil):
		c.log.Warn("stats cache read failed", zap.String("key", key), zap.Error(err))
	}

	out, err := c.inner.Stats(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
			c.log.Warn("stats cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return out, nil
}

// Invalidate drops the cached aggregates. It is best effort.
func (c *CachingStatsRepository) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, c.key()).Err(); err != nil {
		c.log.Warn("stats cache invalidation failed", zap.String("key", c.key()), zap.Error(err))
	}
}

func (c *CachingStatsRepository) key() string {
	return c.namespace + ":summary"
}
