// Package dto defines the request and response bodies of the category endpoints.
package dto

import (
	"time"

	"bookmark_backend/internal/feature/categories/domain/entity"
)

type CreateCategoryReq struct {
	Name  string  `json:"name" binding:"required,max=255"`
	Color *string `json:"color" binding:"omitempty,max=32"`
}

// UpdateCategoryReq is a partial update. Absent fields are kept.
type UpdateCategoryReq struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=255"`
	Color *string `json:"color" binding:"omitempty,max=32"`
}

type LinkCount struct {
	Links int64 `json:"links"`
}

type CategoryRes struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	UserID    uint      `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Count     LinkCount `json:"_count"`
}

func NewCategoryRes(c *entity.Category) CategoryRes {
	return CategoryRes{
		ID:        c.ID,
		Name:      c.Name,
		Color:     c.Color,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Count:     LinkCount{Links: c.LinkCount},
	}
}

func NewCategoryList(cs []entity.Category) []CategoryRes {
	out := make([]CategoryRes, 0, len(cs))
	for i := range cs {
		out = append(out, NewCategoryRes(&cs[i]))
	}
	return out
}
