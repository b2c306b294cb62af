// Package adapters provides the gorm-backed admin repositories.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"bookmark_backend/internal/feature/admin/domain/entity"
	"bookmark_backend/internal/feature/admin/usecase"
	authentity "bookmark_backend/internal/feature/auth/domain/entity"
	"bookmark_backend/internal/platform/db"
)

const countColumns = "users.*, " +
	"(SELECT COUNT(*) FROM links WHERE links.user_id = users.id) AS link_count, " +
	"(SELECT COUNT(*) FROM categories WHERE categories.user_id = users.id) AS category_count"

type userRow struct {
	ID            uint
	Email         string
	Password      string
	Name          string
	Role          string
	LinkCount     int64
	CategoryCount int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type userGorm struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*userGorm)(nil)

func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

func (r *userGorm) withCounts(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&db.UserModel{}).Select(countColumns)
}

func (r *userGorm) List(ctx context.Context) ([]entity.UserSummary, error) {
	var rows []userRow
	if err := r.withCounts(ctx).Order("users.created_at DESC, users.id DESC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	out := make([]entity.UserSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, toSummary(row))
	}
	return out, nil
}

func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.UserSummary, error) {
	var rows []userRow
	if err := r.withCounts(ctx).Where("users.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if len(rows) == 0 {
		return nil, usecase.ErrUserNotFound
	}
	s := toSummary(rows[0])
	return &s, nil
}

func (r *userGorm) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&db.UserModel{}).Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

func (r *userGorm) Create(ctx context.Context, u *authentity.User) error {
	m := &db.UserModel{Email: u.Email, Password: u.Password, Name: u.Name, Role: u.Role.String()}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return usecase.ErrEmailRegistered
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	u.ID = m.ID
	u.CreatedAt = m.CreatedAt
	u.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *userGorm) Update(ctx context.Context, u *authentity.User) error {
	res := r.db.WithContext(ctx).
		Model(&db.UserModel{}).
		Where("id = ?", u.ID).
		Updates(map[string]any{
			"name":     u.Name,
			"email":    u.Email,
			"password": u.Password,
			"role":     u.Role.String(),
		})
	if res.Error != nil {
		if db.IsUniqueViolation(res.Error) {
			return usecase.ErrEmailInUse
		}
		return fmt.Errorf("failed to update user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}

	var m db.UserModel
	if err := r.db.WithContext(ctx).Select("updated_at").First(&m, u.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usecase.ErrUserNotFound
		}
		return fmt.Errorf("failed to reload user: %w", err)
	}
	u.UpdatedAt = m.UpdatedAt
	return nil
}

// Delete relies on the foreign keys to remove the user's links and categories.
func (r *userGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&db.UserModel{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

func toSummary(row userRow) entity.UserSummary {
	return entity.UserSummary{
		User: authentity.User{
			ID:        row.ID,
			Email:     row.Email,
			Password:  row.Password,
			Name:      row.Name,
			Role:      authentity.Role(row.Role),
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
		LinkCount:     row.LinkCount,
		CategoryCount: row.CategoryCount,
	}
}
