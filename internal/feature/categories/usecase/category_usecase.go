// Package usecase implements per-user category management.
package usecase

import (
	"context"
	"strings"

	"bookmark_backend/internal/feature/categories/domain/entity"
	"bookmark_backend/internal/shared/apperr"
)

// CategoryRepository abstracts category persistence. Every method is scoped
// to the owner; a category owned by someone else is reported as
// ErrCategoryNotFound.
type CategoryRepository interface {
	// List returns the owner's categories ordered by name with link counts.
	List(ctx context.Context, userID uint) ([]entity.Category, error)

	FindByID(ctx context.Context, userID, id uint) (*entity.Category, error)

	// NameTaken reports whether another of the owner's categories, other than
	// excludeID, is called name. Pass 0 to exclude nothing.
	NameTaken(ctx context.Context, userID uint, name string, excludeID uint) (bool, error)

	// Create inserts c. A unique violation yields ErrCategoryExists.
	Create(ctx context.Context, c *entity.Category) error

	// Update stores name and color. A unique violation yields ErrCategoryNameTaken.
	Update(ctx context.Context, c *entity.Category) error

	// Delete removes the category; its links keep existing uncategorized.
	Delete(ctx context.Context, userID, id uint) error
}

// CreateInput carries the fields of a new category.
type CreateInput struct {
	Name  string
	Color *string
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	Name  *string
	Color *string
}

type categoryUsecase struct {
	repo CategoryRepository
}

func NewCategoryUsecase(repo CategoryRepository) *categoryUsecase {
	return &categoryUsecase{repo: repo}
}

func (u *categoryUsecase) List(ctx context.Context, userID uint) ([]entity.Category, error) {
	return u.repo.List(ctx, userID)
}

func (u *categoryUsecase) Get(ctx context.Context, userID, id uint) (*entity.Category, error) {
	return u.repo.FindByID(ctx, userID, id)
}

// Create adds a category for userID, defaulting the color.
func (u *categoryUsecase) Create(ctx context.Context, userID uint, in CreateInput) (*entity.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Invalid("name", "is required")
	}

	taken, err := u.repo.NameTaken(ctx, userID, name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrCategoryExists
	}

	c := &entity.Category{
		Name:   name,
		Color:  entity.DefaultColor,
		UserID: userID,
	}
	if in.Color != nil && strings.TrimSpace(*in.Color) != "" {
		c.Color = strings.TrimSpace(*in.Color)
	}

	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update renames and/or recolors one of userID's categories.
func (u *categoryUsecase) Update(ctx context.Context, userID, id uint, in UpdateInput) (*entity.Category, error) {
	c, err := u.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, apperr.Invalid("name", "is required")
		}
		if name != c.Name {
			taken, err := u.repo.NameTaken(ctx, userID, name, id)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrCategoryNameTaken
			}
		}
		c.Name = name
	}
	if in.Color != nil && strings.TrimSpace(*in.Color) != "" {
		c.Color = strings.TrimSpace(*in.Color)
	}

	if err := u.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (u *categoryUsecase) Delete(ctx context.Context, userID, id uint) error {
	return u.repo.Delete(ctx, userID, id)
}
