// Package di provides dependency injection factories for creating application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	adminadapters "bookmark_backend/internal/feature/admin/adapters"
	adminusecase "bookmark_backend/internal/feature/admin/usecase"
	"bookmark_backend/internal/platform/cache"
)

// NewStatsRepository creates a StatsRepository implementation.
// If Redis is available, the database aggregates are cached there for ttl.
// Otherwise, every call reads the database.
func NewStatsRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration, log *zap.Logger) adminusecase.StatsRepository {
	inner := adminadapters.NewStatsGorm(db)
	if rdb == nil {
		return inner
	}
	return cache.NewCachingStatsRepository(rdb, ttl, inner, "stats", log)
}
