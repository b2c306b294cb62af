// Package usecase implements per-user bookmark management.
package usecase

import (
	"context"
	"strings"

	"bookmark_backend/internal/feature/links/domain/entity"
	"bookmark_backend/internal/shared/apperr"
)

// LinkRepository abstracts link persistence. Every method is scoped to the
// owner; links owned by someone else are reported as ErrLinkNotFound.
type LinkRepository interface {
	// List returns the owner's links newest first.
	List(ctx context.Context, userID uint, f entity.ListFilter) ([]entity.Link, error)

	FindByID(ctx context.Context, userID, id uint) (*entity.Link, error)

	// Create inserts l and fills its ID, timestamps and category summary.
	Create(ctx context.Context, l *entity.Link) error

	// Update stores the editable fields of l and reloads it.
	Update(ctx context.Context, l *entity.Link) error

	Delete(ctx context.Context, userID, id uint) error

	// ToggleFavorite flips is_favorite in a single statement.
	ToggleFavorite(ctx context.Context, userID, id uint) (*entity.Link, error)

	// IncrementClicks adds one to clicks in a single statement.
	IncrementClicks(ctx context.Context, userID, id uint) (*entity.Link, error)

	// OwnsCategory reports whether categoryID exists and belongs to userID.
	OwnsCategory(ctx context.Context, userID, categoryID uint) (bool, error)
}

// CreateInput carries the fields of a new link.
type CreateInput struct {
	Title       string
	URL         string
	Description *string
	Favicon     *string
	CategoryID  *uint
	IsFavorite  bool
}

// UpdateInput is a partial update. A nil pointer leaves the field unchanged.
// Description, Favicon and CategoryID can also be cleared: a non-nil outer
// pointer holding nil clears the field.
type UpdateInput struct {
	Title       *string
	URL         *string
	IsFavorite  *bool
	Description **string
	Favicon     **string
	CategoryID  **uint
}

type linkUsecase struct {
	repo LinkRepository
}

func NewLinkUsecase(repo LinkRepository) *linkUsecase {
	return &linkUsecase{repo: repo}
}

func (u *linkUsecase) List(ctx context.Context, userID uint, f entity.ListFilter) ([]entity.Link, error) {
	f.Search = strings.TrimSpace(f.Search)
	return u.repo.List(ctx, userID, f)
}

func (u *linkUsecase) Get(ctx context.Context, userID, id uint) (*entity.Link, error) {
	return u.repo.FindByID(ctx, userID, id)
}

// Create adds a link owned by userID.
func (u *linkUsecase) Create(ctx context.Context, userID uint, in CreateInput) (*entity.Link, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperr.Invalid("title", "is required")
	}
	if err := u.checkCategory(ctx, userID, in.CategoryID); err != nil {
		return nil, err
	}

	l := &entity.Link{
		Title:       title,
		URL:         strings.TrimSpace(in.URL),
		Description: in.Description,
		Favicon:     in.Favicon,
		IsFavorite:  in.IsFavorite,
		UserID:      userID,
		CategoryID:  in.CategoryID,
	}
	if err := u.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Update applies in to one of userID's links.
func (u *linkUsecase) Update(ctx context.Context, userID, id uint, in UpdateInput) (*entity.Link, error) {
	l, err := u.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, apperr.Invalid("title", "is required")
		}
		l.Title = title
	}
	if in.URL != nil {
		l.URL = strings.TrimSpace(*in.URL)
	}
	if in.IsFavorite != nil {
		l.IsFavorite = *in.IsFavorite
	}
	if in.Description != nil {
		l.Description = *in.Description
	}
	if in.Favicon != nil {
		l.Favicon = *in.Favicon
	}
	if in.CategoryID != nil {
		if err := u.checkCategory(ctx, userID, *in.CategoryID); err != nil {
			return nil, err
		}
		l.CategoryID = *in.CategoryID
	}

	if err := u.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (u *linkUsecase) Delete(ctx context.Context, userID, id uint) error {
	return u.repo.Delete(ctx, userID, id)
}

func (u *linkUsecase) ToggleFavorite(ctx context.Context, userID, id uint) (*entity.Link, error) {
	return u.repo.ToggleFavorite(ctx, userID, id)
}

func (u *linkUsecase) IncrementClicks(ctx context.Context, userID, id uint) (*entity.Link, error) {
	return u.repo.IncrementClicks(ctx, userID, id)
}

// checkCategory rejects category ids the caller does not own. Absent and
// foreign categories produce the same error.
func (u *linkUsecase) checkCategory(ctx context.Context, userID uint, categoryID *uint) error {
	if categoryID == nil {
		return nil
	}
	ok, err := u.repo.OwnsCategory(ctx, userID, *categoryID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCategoryNotOwned
	}
	return nil
}
