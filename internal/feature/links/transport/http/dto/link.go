// Package dto defines the request and response bodies of the link endpoints.
package dto

import (
	"time"

	"bookmark_backend/internal/api"
	"bookmark_backend/internal/feature/links/domain/entity"
	"bookmark_backend/internal/feature/links/usecase"
)

// CreateLinkReq is the body of POST /api/links. Any owner field is ignored.
type CreateLinkReq struct {
	Title       string  `json:"title" binding:"required,max=255"`
	URL         string  `json:"url" binding:"required,url"`
	Description *string `json:"description"`
	Favicon     *string `json:"favicon" binding:"omitempty,max=2048"`
	CategoryID  *uint   `json:"categoryId"`
	IsFavorite  bool    `json:"isFavorite"`
}

func (r CreateLinkReq) Input() usecase.CreateInput {
	return usecase.CreateInput{
		Title:       r.Title,
		URL:         r.URL,
		Description: r.Description,
		Favicon:     r.Favicon,
		CategoryID:  r.CategoryID,
		IsFavorite:  r.IsFavorite,
	}
}

// UpdateLinkReq is the body of PUT /api/links/:id. Absent fields are kept;
// description, favicon and categoryId may be cleared with an explicit null.
type UpdateLinkReq struct {
	Title       *string              `json:"title" binding:"omitempty,min=1,max=255"`
	URL         *string              `json:"url" binding:"omitempty,url"`
	IsFavorite  *bool                `json:"isFavorite"`
	Description api.Nullable[string] `json:"description"`
	Favicon     api.Nullable[string] `json:"favicon"`
	CategoryID  api.Nullable[uint]   `json:"categoryId"`
}

func (r UpdateLinkReq) Input() usecase.UpdateInput {
	return usecase.UpdateInput{
		Title:       r.Title,
		URL:         r.URL,
		IsFavorite:  r.IsFavorite,
		Description: presence(r.Description),
		Favicon:     presence(r.Favicon),
		CategoryID:  presence(r.CategoryID),
	}
}

// presence maps absent to nil and null to a pointer to nil.
func presence[T any](n api.Nullable[T]) **T {
	if !n.Set {
		return nil
	}
	p := n.Ptr()
	return &p
}

type CategoryRefRes struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type LinkRes struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	URL         string          `json:"url"`
	Description *string         `json:"description"`
	Favicon     *string         `json:"favicon"`
	Clicks      int64           `json:"clicks"`
	IsFavorite  bool            `json:"isFavorite"`
	UserID      uint            `json:"userId"`
	CategoryID  *uint           `json:"categoryId"`
	Category    *CategoryRefRes `json:"category"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func NewLinkRes(l *entity.Link) LinkRes {
	res := LinkRes{
		ID:          l.ID,
		Title:       l.Title,
		URL:         l.URL,
		Description: l.Description,
		Favicon:     l.Favicon,
		Clicks:      l.Clicks,
		IsFavorite:  l.IsFavorite,
		UserID:      l.UserID,
		CategoryID:  l.CategoryID,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
	if l.Category != nil {
		res.Category = &CategoryRefRes{ID: l.Category.ID, Name: l.Category.Name, Color: l.Category.Color}
	}
	return res
}

func NewLinkList(ls []entity.Link) []LinkRes {
	out := make([]LinkRes, 0, len(ls))
	for i := range ls {
		out = append(out, NewLinkRes(&ls[i]))
	}
	return out
}
