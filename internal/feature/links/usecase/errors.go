package usecase

import "bookmark_backend/internal/shared/apperr"

var (
	// ErrLinkNotFound is returned for absent links and for links owned by
	// someone else.
	ErrLinkNotFound = apperr.New(apperr.ErrNotFound, "link not found")

	// ErrCategoryNotOwned is returned when a link is assigned to a category
	// the caller does not own, or that does not exist.
	ErrCategoryNotOwned = apperr.Invalid("categoryId", "category not found")
)
