package adapters

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"bookmark_backend/internal/feature/admin/domain/entity"
	"bookmark_backend/internal/feature/admin/usecase"
	"bookmark_backend/internal/platform/db"
)

type statsGorm struct {
	db *gorm.DB
}

var _ usecase.StatsRepository = (*statsGorm)(nil)

func NewStatsGorm(db *gorm.DB) *statsGorm {
	return &statsGorm{db: db}
}

// Stats runs the aggregate queries concurrently.
func (r *statsGorm) Stats(ctx context.Context) (*entity.Stats, error) {
	s := &entity.Stats{
		RecentUsers: []entity.RecentUser{},
		TopLinks:    []entity.TopLink{},
	}

	g, ctx := errgroup.WithContext(ctx)
	count := func(model any, dst *int64) func() error {
		return func() error {
			return r.db.WithContext(ctx).Model(model).Count(dst).Error
		}
	}
	g.Go(count(&db.UserModel{}, &s.TotalUsers))
	g.Go(count(&db.LinkModel{}, &s.TotalLinks))
	g.Go(count(&db.CategoryModel{}, &s.TotalCategories))
	g.Go(func() error {
		return r.db.WithContext(ctx).
			Model(&db.UserModel{}).
			Select("id", "name", "email", "created_at").
			Order("created_at DESC, id DESC").
			Limit(entity.StatsListSize).
			Scan(&s.RecentUsers).Error
	})
	g.Go(func() error {
		return r.db.WithContext(ctx).
			Model(&db.LinkModel{}).
			Select("id", "title", "url", "clicks").
			Order("clicks DESC, id ASC").
			Limit(entity.StatsListSize).
			Scan(&s.TopLinks).Error
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	return s, nil
}
