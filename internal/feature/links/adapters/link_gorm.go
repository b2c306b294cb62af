// Package adapters provides the gorm-backed link repository.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"bookmark_backend/internal/feature/links/domain/entity"
	"bookmark_backend/internal/feature/links/usecase"
	"bookmark_backend/internal/platform/db"
)

// searchClause matches an escaped pattern against every text column, with
// both sides lowered by the database so the same case folding applies to each.
const searchClause = `(LOWER(title) LIKE LOWER(?) ESCAPE '\' OR LOWER(COALESCE(description, '')) LIKE LOWER(?) ESCAPE '\' OR LOWER(url) LIKE LOWER(?) ESCAPE '\')`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type linkGorm struct {
	db *gorm.DB
}

var _ usecase.LinkRepository = (*linkGorm)(nil)

func NewLinkGorm(db *gorm.DB) *linkGorm {
	return &linkGorm{db: db}
}

// owned starts a query over userID's links with the category summary preloaded.
func (r *linkGorm) owned(ctx context.Context, userID uint) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Category", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "name", "color")
		}).
		Where("links.user_id = ?", userID)
}

func (r *linkGorm) List(ctx context.Context, userID uint, f entity.ListFilter) ([]entity.Link, error) {
	q := r.owned(ctx, userID)
	if f.CategoryID != nil {
		q = q.Where("links.category_id = ?", *f.CategoryID)
	}
	if f.FavoritesOnly {
		q = q.Where("links.is_favorite = ?", true)
	}
	if f.Search != "" {
		pattern := "%" + likeEscaper.Replace(f.Search) + "%"
		q = q.Where(searchClause, pattern, pattern, pattern)
	}

	var models []db.LinkModel
	if err := q.Order("links.created_at DESC, links.id DESC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}

	out := make([]entity.Link, 0, len(models))
	for i := range models {
		out = append(out, *toEntity(&models[i]))
	}
	return out, nil
}

func (r *linkGorm) FindByID(ctx context.Context, userID, id uint) (*entity.Link, error) {
	var m db.LinkModel
	if err := r.owned(ctx, userID).Where("links.id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to find link: %w", err)
	}
	return toEntity(&m), nil
}

func (r *linkGorm) Create(ctx context.Context, l *entity.Link) error {
	m := &db.LinkModel{
		Title:       l.Title,
		URL:         l.URL,
		Description: l.Description,
		Favicon:     l.Favicon,
		IsFavorite:  l.IsFavorite,
		UserID:      l.UserID,
		CategoryID:  l.CategoryID,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to create link: %w", err)
	}
	return r.reload(ctx, l, m.ID)
}

func (r *linkGorm) Update(ctx context.Context, l *entity.Link) error {
	err := r.updateOwned(ctx, l.UserID, l.ID, map[string]any{
		"title":       l.Title,
		"url":         l.URL,
		"description": l.Description,
		"favicon":     l.Favicon,
		"is_favorite": l.IsFavorite,
		"category_id": l.CategoryID,
	})
	if err != nil {
		return err
	}
	return r.reload(ctx, l, l.ID)
}

func (r *linkGorm) Delete(ctx context.Context, userID, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&db.LinkModel{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete link: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrLinkNotFound
	}
	return nil
}

func (r *linkGorm) ToggleFavorite(ctx context.Context, userID, id uint) (*entity.Link, error) {
	if err := r.updateOwned(ctx, userID, id, map[string]any{"is_favorite": gorm.Expr("NOT is_favorite")}); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, userID, id)
}

func (r *linkGorm) IncrementClicks(ctx context.Context, userID, id uint) (*entity.Link, error) {
	if err := r.updateOwned(ctx, userID, id, map[string]any{"clicks": gorm.Expr("clicks + ?", 1)}); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, userID, id)
}

func (r *linkGorm) OwnsCategory(ctx context.Context, userID, categoryID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.CategoryModel{}).
		Where("id = ? AND user_id = ?", categoryID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check category owner: %w", err)
	}
	return count > 0, nil
}

// updateOwned runs a single UPDATE scoped by id and owner.
func (r *linkGorm) updateOwned(ctx context.Context, userID, id uint, values map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&db.LinkModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(values)
	if res.Error != nil {
		return fmt.Errorf("failed to update link: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrLinkNotFound
	}
	return nil
}

func (r *linkGorm) reload(ctx context.Context, l *entity.Link, id uint) error {
	fresh, err := r.FindByID(ctx, l.UserID, id)
	if err != nil {
		return err
	}
	*l = *fresh
	return nil
}

func toEntity(m *db.LinkModel) *entity.Link {
	l := &entity.Link{
		ID:          m.ID,
		Title:       m.Title,
		URL:         m.URL,
		Description: m.Description,
		Favicon:     m.Favicon,
		IsFavorite:  m.IsFavorite,
		Clicks:      m.Clicks,
		UserID:      m.UserID,
		CategoryID:  m.CategoryID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Category != nil {
		l.Category = &entity.CategoryRef{ID: m.Category.ID, Name: m.Category.Name, Color: m.Category.Color}
	}
	return l
}
