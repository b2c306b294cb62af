// Package handler serves the category endpoints.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookmark_backend/internal/api"
	"bookmark_backend/internal/feature/categories/domain/entity"
	"bookmark_backend/internal/feature/categories/transport/http/dto"
	"bookmark_backend/internal/feature/categories/usecase"
	"bookmark_backend/internal/platform/http/response"
	jwtmw "bookmark_backend/internal/platform/jwt"
)

type CategoryUsecase interface {
	List(ctx context.Context, userID uint) ([]entity.Category, error)
	Get(ctx context.Context, userID, id uint) (*entity.Category, error)
	Create(ctx context.Context, userID uint, in usecase.CreateInput) (*entity.Category, error)
	Update(ctx context.Context, userID, id uint, in usecase.UpdateInput) (*entity.Category, error)
	Delete(ctx context.Context, userID, id uint) error
}

type CategoryHandler struct {
	categories CategoryUsecase
	log        *zap.Logger
}

func NewCategoryHandler(categories CategoryUsecase, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{categories: categories, log: log}
}

// List handles GET /api/categories.
func (h *CategoryHandler) List(c *gin.Context) {
	id, err := jwtmw.RequireIdentity(c)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	cs, err := h.categories.List(c.Request.Context(), id.UserID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryList(cs))
}

// Get handles GET /api/categories/:id.
func (h *CategoryHandler) Get(c *gin.Context) {
	id, categoryID, ok := h.target(c)
	if !ok {
		return
	}

	cat, err := h.categories.Get(c.Request.Context(), id.UserID, categoryID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryRes(cat))
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	id, err := jwtmw.RequireIdentity(c)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	var req dto.CreateCategoryReq
	if !response.BindJSON(c, &req) {
		return
	}

	cat, err := h.categories.Create(c.Request.Context(), id.UserID, usecase.CreateInput{Name: req.Name, Color: req.Color})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCategoryRes(cat))
}

// Update handles PUT /api/categories/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, categoryID, ok := h.target(c)
	if !ok {
		return
	}

	var req dto.UpdateCategoryReq
	if !response.BindJSON(c, &req) {
		return
	}

	cat, err := h.categories.Update(c.Request.Context(), id.UserID, categoryID, usecase.UpdateInput{Name: req.Name, Color: req.Color})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryRes(cat))
}

// Delete handles DELETE /api/categories/:id. Links in the category are kept.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, categoryID, ok := h.target(c)
	if !ok {
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id.UserID, categoryID); err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// target resolves the caller and the :id path parameter, writing the error
// response itself when either is missing or malformed.
func (h *CategoryHandler) target(c *gin.Context) (jwtmw.Identity, uint, bool) {
	id, err := jwtmw.RequireIdentity(c)
	if err != nil {
		response.Error(c, h.log, err)
		return jwtmw.Identity{}, 0, false
	}
	categoryID, err := api.BindID(c)
	if err != nil {
		response.Error(c, h.log, err)
		return jwtmw.Identity{}, 0, false
	}
	return id, categoryID, true
}
