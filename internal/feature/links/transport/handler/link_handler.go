// Package handler serves the link endpoints.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookmark_backend/internal/api"
	"bookmark_backend/internal/feature/links/domain/entity"
	"bookmark_backend/internal/feature/links/transport/http/dto"
	"bookmark_backend/internal/feature/links/usecase"
	"bookmark_backend/internal/platform/http/response"
	jwtmw "bookmark_backend/internal/platform/jwt"
)

type LinkUsecase interface {
	List(ctx context.Context, userID uint, f entity.ListFilter) ([]entity.Link, error)
	Get(ctx context.Context, userID, id uint) (*entity.Link, error)
	Create(ctx context.Context, userID uint, in usecase.CreateInput) (*entity.Link, error)
	Update(ctx context.Context, userID, id uint, in usecase.UpdateInput) (*entity.Link, error)
	Delete(ctx context.Context, userID, id uint) error
	ToggleFavorite(ctx context.Context, userID, id uint) (*entity.Link, error)
	IncrementClicks(ctx context.Context, userID, id uint) (*entity.Link, error)
}

type LinkHandler struct {
	links LinkUsecase
	log   *zap.Logger
}

func NewLinkHandler(links LinkUsecase, log *zap.Logger) *LinkHandler {
	return &LinkHandler{links: links, log: log}
}

// List handles GET /api/links?categoryId=&favorite=&search=.
// favorite=true restricts to favorites; any other value applies no filter.
func (h *LinkHandler) List(c *gin.Context) {
	id, err := jwtmw.RequireIdentity(c)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	params, err := api.BindListLinksParams(c)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	f := entity.ListFilter{
		CategoryID:    params.CategoryID,
		FavoritesOnly: params.Favorite != nil && *params.Favorite,
	}
	if params.Search != nil {
		f.Search = *params.Search
	}

	links, err := h.links.List(c.Request.Context(), id.UserID, f)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewLinkList(links))
}

// Get handles GET /api/links/:id.
func (h *LinkHandler) Get(c *gin.Context) {
	h.single(c, http.StatusOK, h.links.Get)
}

// Create handles POST /api/links.
func (h *LinkHandler) Create(c *gin.Context) {
	id, err := jwtmw.RequireIdentity(c)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	var req dto.CreateLinkReq
	if !response.BindJSON(c, &req) {
		return
	}

	l, err := h.links.Create(c.Request.Context(), id.UserID, req.Input())
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewLinkRes(l))
}

// Update handles PUT /api/links/:id.
func (h *LinkHandler) Update(c *gin.Context) {
	id, linkID, ok := h.target(c)
	if !ok {
		return
	}

	var req dto.UpdateLinkReq
	if !response.BindJSON(c, &req) {
		return
	}

	l, err := h.links.Update(c.Request.Context(), id.UserID, linkID, req.Input())
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewLinkRes(l))
}

// Delete handles DELETE /api/links/:id.
func (h *LinkHandler) Delete(c *gin.Context) {
	id, linkID, ok := h.target(c)
	if !ok {
		return
	}

	if err := h.links.Delete(c.Request.Context(), id.UserID, linkID); err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleFavorite handles POST /api/links/:id/favorite.
func (h *LinkHandler) ToggleFavorite(c *gin.Context) {
	h.single(c, http.StatusOK, h.links.ToggleFavorite)
}

// IncrementClicks handles POST /api/links/:id/click.
func (h *LinkHandler) IncrementClicks(c *gin.Context) {
	h.single(c, http.StatusOK, h.links.IncrementClicks)
}

// single runs an operation addressed by the :id path parameter and writes
// the resulting link.
func (h *LinkHandler) single(c *gin.Context, status int, op func(ctx context.Context, userID, id uint) (*entity.Link, error)) {
	id, linkID, ok := h.target(c)
	if !ok {
		return
	}

	l, err := op(c.Request.Context(), id.UserID, linkID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(status, dto.NewLinkRes(l))
}

func (h *LinkHandler) target(c *gin.Context) (jwtmw.Identity, uint, bool) {
	id, err := jwtmw.RequireIdentity(c)
	if err != nil {
		response.Error(c, h.log, err)
		return jwtmw.Identity{}, 0, false
	}
	linkID, err := api.BindID(c)
	if err != nil {
		response.Error(c, h.log, err)
		return jwtmw.Identity{}, 0, false
	}
	return id, linkID, true
}
