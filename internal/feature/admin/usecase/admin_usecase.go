// Package usecase implements account administration and system statistics.
package usecase

import (
	"context"
	"strings"

	"bookmark_backend/internal/feature/admin/domain/entity"
	authentity "bookmark_backend/internal/feature/auth/domain/entity"
	"bookmark_backend/internal/shared/apperr"
)

// UserRepository is the unscoped view of users that administrators get.
type UserRepository interface {
	// List returns every user, newest first, with ownership counts.
	List(ctx context.Context) ([]entity.UserSummary, error)

	// FindByID returns ErrUserNotFound when no user matches.
	FindByID(ctx context.Context, id uint) (*entity.UserSummary, error)

	// EmailTaken reports whether a user other than excludeID uses email.
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)

	Create(ctx context.Context, u *authentity.User) error

	// Update stores name, email, password hash and role.
	Update(ctx context.Context, u *authentity.User) error

	// Delete removes the user together with their links and categories.
	Delete(ctx context.Context, id uint) error
}

// StatsRepository computes system-wide aggregates.
type StatsRepository interface {
	Stats(ctx context.Context) (*entity.Stats, error)
}

// statsInvalidator is implemented by caching StatsRepository decorators.
type statsInvalidator interface {
	Invalidate(ctx context.Context)
}

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}

// CreateUserInput carries a new account. An empty Role means USER.
type CreateUserInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// UpdateUserInput is a partial update; nil fields are left unchanged.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
}

type adminUsecase struct {
	users  UserRepository
	stats  StatsRepository
	hasher PasswordHasher
}

func NewAdminUsecase(users UserRepository, stats StatsRepository, hasher PasswordHasher) *adminUsecase {
	return &adminUsecase{users: users, stats: stats, hasher: hasher}
}

func (u *adminUsecase) ListUsers(ctx context.Context) ([]entity.UserSummary, error) {
	return u.users.List(ctx)
}

func (u *adminUsecase) GetUser(ctx context.Context, id uint) (*entity.UserSummary, error) {
	return u.users.FindByID(ctx, id)
}

// CreateUser creates an account with the requested role.
func (u *adminUsecase) CreateUser(ctx context.Context, in CreateUserInput) (*entity.UserSummary, error) {
	role := authentity.RoleUser
	if strings.TrimSpace(in.Role) != "" {
		r, err := authentity.ParseRole(in.Role)
		if err != nil {
			return nil, apperr.Invalid("role", "must be USER or ADMIN")
		}
		role = r
	}

	email := strings.TrimSpace(in.Email)
	taken, err := u.users.EmailTaken(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailRegistered
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &authentity.User{
		Email:    email,
		Password: hashed,
		Name:     strings.TrimSpace(in.Name),
		Role:     role,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	u.invalidateStats(ctx)
	return &entity.UserSummary{User: *user}, nil
}

// UpdateUser applies in to any account.
func (u *adminUsecase) UpdateUser(ctx context.Context, id uint, in UpdateUserInput) (*entity.UserSummary, error) {
	current, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user := current.User

	if in.Role != nil {
		r, err := authentity.ParseRole(*in.Role)
		if err != nil {
			return nil, apperr.Invalid("role", "must be USER or ADMIN")
		}
		user.Role = r
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, apperr.Invalid("name", "is required")
		}
		user.Name = name
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if email != user.Email {
			taken, err := u.users.EmailTaken(ctx, email, id)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrEmailInUse
			}
			user.Email = email
		}
	}
	if in.Password != nil {
		hashed, err := u.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := u.users.Update(ctx, &user); err != nil {
		return nil, err
	}
	u.invalidateStats(ctx)
	return &entity.UserSummary{User: user, LinkCount: current.LinkCount, CategoryCount: current.CategoryCount}, nil
}

// DeleteUser removes targetID on behalf of actorID. Administrators cannot
// remove their own account.
func (u *adminUsecase) DeleteUser(ctx context.Context, actorID, targetID uint) error {
	if actorID == targetID {
		return ErrCannotDeleteSelf
	}
	if err := u.users.Delete(ctx, targetID); err != nil {
		return err
	}
	u.invalidateStats(ctx)
	return nil
}

func (u *adminUsecase) Stats(ctx context.Context) (*entity.Stats, error) {
	return u.stats.Stats(ctx)
}

func (u *adminUsecase) invalidateStats(ctx context.Context) {
	if inv, ok := u.stats.(statsInvalidator); ok {
		inv.Invalidate(ctx)
	}
}
