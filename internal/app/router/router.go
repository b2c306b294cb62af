// Package router assembles the Gin engine and mounts every route under /api.
package router

import (
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookmark_backend/internal/api"
	adminhandler "bookmark_backend/internal/feature/admin/transport/handler"
	authhandler "bookmark_backend/internal/feature/auth/transport/handler"
	categoryhandler "bookmark_backend/internal/feature/categories/transport/handler"
	linkhandler "bookmark_backend/internal/feature/links/transport/handler"
	"bookmark_backend/internal/platform/http/handler"
	"bookmark_backend/internal/platform/http/middleware"
	"bookmark_backend/internal/platform/http/response"
	jwtmw "bookmark_backend/internal/platform/jwt"
)

// Handlers groups the feature handlers mounted by NewRouter.
type Handlers struct {
	Auth       *authhandler.AuthHandler
	Links      *linkhandler.LinkHandler
	Categories *categoryhandler.CategoryHandler
	Admin      *adminhandler.AdminHandler
}

func NewRouter(h Handlers, verifier jwtmw.TokenVerifier, allowedOrigins []string, log *zap.Logger) *gin.Engine {
	response.RegisterJSONFieldNames()

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logging(log),
		middleware.Recovery(log),
		cors.New(corsConfig(allowedOrigins)),
	)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "not found"})
	})

	apiGroup := r.Group("/api")

	// 認証不要
	apiGroup.GET("/health", handler.Health)
	apiGroup.HEAD("/health", handler.Health)

	authRequired := jwtmw.AuthRequired(verifier)

	auth := apiGroup.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.GET("/profile", authRequired, h.Auth.Profile)
		auth.PUT("/profile", authRequired, h.Auth.UpdateProfile)
	}

	links := apiGroup.Group("/links", authRequired)
	{
		links.GET("", h.Links.List)
		links.POST("", h.Links.Create)
		links.GET("/:id", h.Links.Get)
		links.PUT("/:id", h.Links.Update)
		links.DELETE("/:id", h.Links.Delete)
		links.POST("/:id/favorite", h.Links.ToggleFavorite)
		links.POST("/:id/click", h.Links.IncrementClicks)
	}

	categories := apiGroup.Group("/categories", authRequired)
	{
		categories.GET("", h.Categories.List)
		categories.POST("", h.Categories.Create)
		categories.GET("/:id", h.Categories.Get)
		categories.PUT("/:id", h.Categories.Update)
		categories.DELETE("/:id", h.Categories.Delete)
	}

	admin := apiGroup.Group("/admin", authRequired, jwtmw.RequireAdmin())
	{
		admin.GET("/stats", h.Admin.Stats)
		admin.GET("/users", h.Admin.ListUsers)
		admin.POST("/users", h.Admin.CreateUser)
		admin.GET("/users/:id", h.Admin.GetUser)
		admin.PUT("/users/:id", h.Admin.UpdateUser)
		admin.DELETE("/users/:id", h.Admin.DeleteUser)
	}

	return r
}

// corsConfig allows every origin when the list is empty or contains "*".
func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", middleware.HeaderRequestID)
	cfg.ExposeHeaders = []string{middleware.HeaderRequestID}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
