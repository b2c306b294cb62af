// Package adapters provides the gorm-backed user repository.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookmark_backend/internal/feature/auth/domain/entity"
	"bookmark_backend/internal/feature/auth/usecase"
	"bookmark_backend/internal/platform/db"
)

type userGorm struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserGorm returns a UserRepository backed by db.
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts u and fills its ID and timestamps.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	m := toModel(u)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	*u = *toEntity(m)
	return nil
}

func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return r.first(ctx, "id = ?", id)
}

// UpdateProfile writes name and password only.
func (r *userGorm) UpdateProfile(ctx context.Context, u *entity.User) error {
	res := r.db.WithContext(ctx).
		Model(&db.UserModel{ID: u.ID}).
		Updates(map[string]any{"name": u.Name, "password": u.Password})
	if res.Error != nil {
		return fmt.Errorf("failed to update user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}

	fresh, err := r.FindByID(ctx, u.ID)
	if err != nil {
		return err
	}
	*u = *fresh
	return nil
}

func (r *userGorm) first(ctx context.Context, query string, arg any) (*entity.User, error) {
	var m db.UserModel
	if err := r.db.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return toEntity(&m), nil
}

func toModel(u *entity.User) *db.UserModel {
	role := u.Role
	if role == "" {
		role = entity.RoleUser
	}
	return &db.UserModel{
		ID:        u.ID,
		Email:     u.Email,
		Password:  u.Password,
		Name:      u.Name,
		Role:      role.String(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toEntity(m *db.UserModel) *entity.User {
	return &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Password:  m.Password,
		Name:      m.Name,
		Role:      entity.Role(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
