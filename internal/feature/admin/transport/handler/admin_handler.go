// Package handler serves the administrator endpoints. Every route here sits
// behind AuthRequired and RequireAdmin.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookmark_backend/internal/api"
	"bookmark_backend/internal/feature/admin/domain/entity"
	"bookmark_backend/internal/feature/admin/transport/http/dto"
	"bookmark_backend/internal/feature/admin/usecase"
	"bookmark_backend/internal/platform/http/response"
	jwtmw "bookmark_backend/internal/platform/jwt"
)

type AdminUsecase interface {
	ListUsers(ctx context.Context) ([]entity.UserSummary, error)
	GetUser(ctx context.Context, id uint) (*entity.UserSummary, error)
	CreateUser(ctx context.Context, in usecase.CreateUserInput) (*entity.UserSummary, error)
	UpdateUser(ctx context.Context, id uint, in usecase.UpdateUserInput) (*entity.UserSummary, error)
	DeleteUser(ctx context.Context, actorID, targetID uint) error
	Stats(ctx context.Context) (*entity.Stats, error)
}

type AdminHandler struct {
	admin AdminUsecase
	log   *zap.Logger
}

func NewAdminHandler(admin AdminUsecase, log *zap.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, log: log}
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.admin.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAdminUserList(users))
}

// GetUser handles GET /api/admin/users/:id.
func (h *AdminHandler) GetUser(c *gin.Context) {
	userID, err := api.BindID(c)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	u, err := h.admin.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAdminUserRes(u))
}

// CreateUser handles POST /api/admin/users.
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserReq
	if !response.BindJSON(c, &req) {
		return
	}

	u, err := h.admin.CreateUser(c.Request.Context(), usecase.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	h.log.Info("user created by admin", zap.Uint("user_id", u.ID), zap.String("role", u.Role.String()))
	c.JSON(http.StatusCreated, dto.NewAdminUserRes(u))
}

// UpdateUser handles PUT /api/admin/users/:id.
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	userID, err := api.BindID(c)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	var req dto.UpdateUserReq
	if !response.BindJSON(c, &req) {
		return
	}

	u, err := h.admin.UpdateUser(c.Request.Context(), userID, usecase.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAdminUserRes(u))
}

// DeleteUser handles DELETE /api/admin/users/:id. The caller cannot delete
// their own account.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	actor, err := jwtmw.RequireIdentity(c)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	userID, err := api.BindID(c)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	if err := h.admin.DeleteUser(c.Request.Context(), actor.UserID, userID); err != nil {
		response.Error(c, h.log, err)
		return
	}
	h.log.Info("user deleted by admin", zap.Uint("user_id", userID), zap.Uint("actor_id", actor.UserID))
	c.Status(http.StatusNoContent)
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	s, err := h.admin.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStatsRes(s))
}
