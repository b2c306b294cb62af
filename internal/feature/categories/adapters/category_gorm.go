// Package adapters provides the gorm-backed category repository.
package adapters

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"bookmark_backend/internal/feature/categories/domain/entity"
	"bookmark_backend/internal/feature/categories/usecase"
	"bookmark_backend/internal/platform/db"
)

// linkCountColumn counts a category's links in the same query.
const linkCountColumn = "(SELECT COUNT(*) FROM links WHERE links.category_id = categories.id) AS link_count"

type categoryRow struct {
	ID        uint
	Name      string
	Color     string
	UserID    uint
	LinkCount int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type categoryGorm struct {
	db *gorm.DB
}

var _ usecase.CategoryRepository = (*categoryGorm)(nil)

func NewCategoryGorm(db *gorm.DB) *categoryGorm {
	return &categoryGorm{db: db}
}

func (r *categoryGorm) withCounts(ctx context.Context, userID uint) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&db.CategoryModel{}).
		Select("categories.*, "+linkCountColumn).
		Where("categories.user_id = ?", userID)
}

func (r *categoryGorm) List(ctx context.Context, userID uint) ([]entity.Category, error) {
	var rows []categoryRow
	if err := r.withCounts(ctx, userID).Order("categories.name ASC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	out := make([]entity.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEntity(row))
	}
	return out, nil
}

func (r *categoryGorm) FindByID(ctx context.Context, userID, id uint) (*entity.Category, error) {
	var rows []categoryRow
	if err := r.withCounts(ctx, userID).Where("categories.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if len(rows) == 0 {
		return nil, usecase.ErrCategoryNotFound
	}
	c := toEntity(rows[0])
	return &c, nil
}

func (r *categoryGorm) NameTaken(ctx context.Context, userID uint, name string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&db.CategoryModel{}).Where("user_id = ? AND name = ?", userID, name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category name: %w", err)
	}
	return count > 0, nil
}

func (r *categoryGorm) Create(ctx context.Context, c *entity.Category) error {
	m := &db.CategoryModel{Name: c.Name, Color: c.Color, UserID: c.UserID}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return usecase.ErrCategoryExists
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	c.ID = m.ID
	c.CreatedAt = m.CreatedAt
	c.UpdatedAt = m.UpdatedAt
	c.LinkCount = 0
	return nil
}

// Update writes name and color scoped by id and owner, then reloads c.
func (r *categoryGorm) Update(ctx context.Context, c *entity.Category) error {
	res := r.db.WithContext(ctx).
		Model(&db.CategoryModel{}).
		Where("id = ? AND user_id = ?", c.ID, c.UserID).
		Updates(map[string]any{"name": c.Name, "color": c.Color})
	if res.Error != nil {
		if db.IsUniqueViolation(res.Error) {
			return usecase.ErrCategoryNameTaken
		}
		return fmt.Errorf("failed to update category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrCategoryNotFound
	}

	fresh, err := r.FindByID(ctx, c.UserID, c.ID)
	if err != nil {
		return err
	}
	*c = *fresh
	return nil
}

func (r *categoryGorm) Delete(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&db.CategoryModel{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrCategoryNotFound
	}
	return nil
}

func toEntity(row categoryRow) entity.Category {
	return entity.Category{
		ID:        row.ID,
		Name:      row.Name,
		Color:     row.Color,
		UserID:    row.UserID,
		LinkCount: row.LinkCount,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
