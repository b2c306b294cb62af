// Package handler serves the auth endpoints.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookmark_backend/internal/feature/auth/domain/entity"
	"bookmark_backend/internal/feature/auth/transport/http/dto"
	"bookmark_backend/internal/feature/auth/usecase"
	"bookmark_backend/internal/platform/http/response"
	jwtmw "bookmark_backend/internal/platform/jwt"
)

// AuthUsecase is the subset of the auth usecase the handler depends on.
type AuthUsecase interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	Profile(ctx context.Context, userID uint) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uint, upd usecase.ProfileUpdate) (*entity.User, error)
}

type AuthHandler struct {
	auth AuthUsecase
	log  *zap.Logger
}

func NewAuthHandler(auth AuthUsecase, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

// Register handles POST /api/auth/register.
//   - 400 on validation failure or an already registered email
//   - 201 with {user, token} on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if !response.BindJSON(c, &req) {
		return
	}

	user, token, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		h.log.Warn("register failed", zap.Error(err), zap.String("remote_addr", c.ClientIP()))
		response.Error(c, h.log, err)
		return
	}

	h.log.Info("user registered", zap.Uint("user_id", user.ID), zap.String("remote_addr", c.ClientIP()))
	c.JSON(http.StatusCreated, dto.AuthRes{User: dto.NewUserRes(user), Token: token})
}

// Login handles POST /api/auth/login.
//   - 401 for an unknown email or wrong password, without saying which
//   - 200 with {user, token} on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if !response.BindJSON(c, &req) {
		return
	}

	user, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.log.Warn("login failed", zap.Error(err), zap.String("remote_addr", c.ClientIP()))
		response.Error(c, h.log, err)
		return
	}

	h.log.Info("user logged in", zap.Uint("user_id", user.ID), zap.String("remote_addr", c.ClientIP()))
	c.JSON(http.StatusOK, dto.AuthRes{User: dto.NewUserRes(user), Token: token})
}

// Profile handles GET /api/auth/profile.
func (h *AuthHandler) Profile(c *gin.Context) {
	id, err := jwtmw.RequireIdentity(c)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	user, err := h.auth.Profile(c.Request.Context(), id.UserID)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

// UpdateProfile handles PUT /api/auth/profile.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	id, err := jwtmw.RequireIdentity(c)
	if err != nil {
		response.Error(c, h.log, err)
		return
	}

	var req dto.UpdateProfileReq
	if !response.BindJSON(c, &req) {
		return
	}

	user, err := h.auth.UpdateProfile(c.Request.Context(), id.UserID, usecase.ProfileUpdate{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}
