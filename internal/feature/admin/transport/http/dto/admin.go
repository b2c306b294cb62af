// Package dto defines the request and response bodies of the admin endpoints.
package dto

import (
	"time"

	"bookmark_backend/internal/feature/admin/domain/entity"
)

type CreateUserReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Name     string `json:"name" binding:"required,max=255"`
	Role     string `json:"role" binding:"omitempty"`
}

// UpdateUserReq is a partial update. Absent fields are kept.
type UpdateUserReq struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6,max=72"`
	Role     *string `json:"role"`
}

type UserCounts struct {
	Links      int64 `json:"links"`
	Categories int64 `json:"categories"`
}

// AdminUserRes is a user as administrators see it. The password hash is
// never exposed.
type AdminUserRes struct {
	ID        uint       `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Count     UserCounts `json:"_count"`
}

func NewAdminUserRes(u *entity.UserSummary) AdminUserRes {
	return AdminUserRes{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		Count:     UserCounts{Links: u.LinkCount, Categories: u.CategoryCount},
	}
}

func NewAdminUserList(us []entity.UserSummary) []AdminUserRes {
	out := make([]AdminUserRes, 0, len(us))
	for i := range us {
		out = append(out, NewAdminUserRes(&us[i]))
	}
	return out
}

type RecentUserRes struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type TopLinkRes struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Clicks int64  `json:"clicks"`
}

type StatsRes struct {
	TotalUsers      int64           `json:"totalUsers"`
	TotalLinks      int64           `json:"totalLinks"`
	TotalCategories int64           `json:"totalCategories"`
	RecentUsers     []RecentUserRes `json:"recentUsers"`
	TopLinks        []TopLinkRes    `json:"topLinks"`
}

func NewStatsRes(s *entity.Stats) StatsRes {
	res := StatsRes{
		TotalUsers:      s.TotalUsers,
		TotalLinks:      s.TotalLinks,
		TotalCategories: s.TotalCategories,
		RecentUsers:     make([]RecentUserRes, 0, len(s.RecentUsers)),
		TopLinks:        make([]TopLinkRes, 0, len(s.TopLinks)),
	}
	for _, u := range s.RecentUsers {
		res.RecentUsers = append(res.RecentUsers, RecentUserRes(u))
	}
	for _, l := range s.TopLinks {
		res.TopLinks = append(res.TopLinks, TopLinkRes(l))
	}
	return res
}
