package usecase

import "bookmark_backend/internal/shared/apperr"

var (
	ErrUserNotFound = apperr.New(apperr.ErrNotFound, "user not found")

	// ErrEmailRegistered is returned when creating a user with a used email.
	ErrEmailRegistered = apperr.New(apperr.ErrConflict, "email already registered")

	// ErrEmailInUse is returned when changing a user's email to a used one.
	ErrEmailInUse = apperr.New(apperr.ErrConflict, "email already in use")

	ErrCannotDeleteSelf = apperr.New(apperr.ErrInvalidOperation, "cannot delete your own account")
)
