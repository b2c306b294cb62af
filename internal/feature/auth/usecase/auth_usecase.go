// Package usecase implements registration, login and profile management.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookmark_backend/internal/feature/auth/domain/entity"
	"bookmark_backend/internal/shared/apperr"
)

// dummyHash is compared against when the email is unknown so that login
// takes the same time whether or not the account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts user persistence.
// The interface is defined by its consumer, not by the adapters package.
type UserRepository interface {
	// Create persists a new user. A duplicate email yields ErrEmailAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail returns ErrUserNotFound when no user matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID returns ErrUserNotFound when no user matches.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// UpdateProfile stores the user's name and password hash.
	UpdateProfile(ctx context.Context, user *entity.User) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(hash, plaintext string) error
}

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	GenerateToken(userID uint, email string, role entity.Role) (string, error)
}

// RegisterInput carries the fields of a self-registration.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// ProfileUpdate is a partial update; nil fields are left unchanged.
type ProfileUpdate struct {
	Name     *string
	Password *string
}

type authUsecase struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewAuthUsecase wires the auth usecase with its dependencies.
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, tokens TokenIssuer) *authUsecase {
	return &authUsecase{users: users, hasher: hasher, tokens: tokens}
}

// Register creates a USER account and returns it with a fresh token.
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, string, error) {
	email := strings.TrimSpace(in.Email)
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, "", apperr.Invalid("name", "is required")
	}

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, "", err
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", err
	}

	user := &entity.User{
		Email:    email,
		Password: hashed,
		Name:     name,
		Role:     entity.RoleUser,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

// Login verifies credentials and returns the user with a fresh token.
// An unknown email and a wrong password are indistinguishable to the caller.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := u.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, "", err
	}

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := u.hasher.Compare(passwordHash, password)

	if err != nil || compareErr != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

// Profile returns the caller's account.
func (u *authUsecase) Profile(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

// UpdateProfile changes the caller's name and/or password.
func (u *authUsecase) UpdateProfile(ctx context.Context, userID uint, upd ProfileUpdate) (*entity.User, error) {
	var name string
	if upd.Name != nil {
		name = strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, apperr.Invalid("name", "is required")
		}
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		user.Name = name
	}
	if upd.Password != nil {
		hashed, err := u.hasher.Hash(*upd.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := u.users.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
