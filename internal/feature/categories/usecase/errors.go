package usecase

import "bookmark_backend/internal/shared/apperr"

var (
	// ErrCategoryNotFound is returned for absent categories and for categories
	// owned by someone else.
	ErrCategoryNotFound = apperr.New(apperr.ErrNotFound, "category not found")

	// ErrCategoryExists is returned when creating a category whose name the
	// owner already uses.
	ErrCategoryExists = apperr.New(apperr.ErrConflict, "category already exists")

	// ErrCategoryNameTaken is returned when renaming onto another category's name.
	ErrCategoryNameTaken = apperr.New(apperr.ErrConflict, "category name already exists")
)
