package di

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bookmark_backend/internal/app/router"
	"bookmark_backend/internal/config"
	adminadapters "bookmark_backend/internal/feature/admin/adapters"
	adminhandler "bookmark_backend/internal/feature/admin/transport/handler"
	adminusecase "bookmark_backend/internal/feature/admin/usecase"
	authadapters "bookmark_backend/internal/feature/auth/adapters"
	authhandler "bookmark_backend/internal/feature/auth/transport/handler"
	authusecase "bookmark_backend/internal/feature/auth/usecase"
	categoryadapters "bookmark_backend/internal/feature/categories/adapters"
	categoryhandler "bookmark_backend/internal/feature/categories/transport/handler"
	categoryusecase "bookmark_backend/internal/feature/categories/usecase"
	linkadapters "bookmark_backend/internal/feature/links/adapters"
	linkhandler "bookmark_backend/internal/feature/links/transport/handler"
	linkusecase "bookmark_backend/internal/feature/links/usecase"
	jwtmw "bookmark_backend/internal/platform/jwt"
	"bookmark_backend/internal/platform/password"
)

// App holds everything the HTTP layer needs.
type App struct {
	Handlers router.Handlers
	Tokens   *jwtmw.TokenService
}

// NewApp wires repositories, usecases and handlers. rdb may be nil.
// bcryptCost 0 selects password.DefaultCost.
func NewApp(cfg *config.Config, db *gorm.DB, rdb *redis.Client, bcryptCost int, log *zap.Logger) *App {
	tokens := jwtmw.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	hasher := password.NewBcryptHasher(bcryptCost)

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	linkRepo := linkadapters.NewLinkGorm(db)
	categoryRepo := categoryadapters.NewCategoryGorm(db)
	adminUserRepo := adminadapters.NewUserGorm(db)
	statsRepo := NewStatsRepository(rdb, db, cfg.StatsCacheTTL, log)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, hasher, tokens)
	linkUC := linkusecase.NewLinkUsecase(linkRepo)
	categoryUC := categoryusecase.NewCategoryUsecase(categoryRepo)
	adminUC := adminusecase.NewAdminUsecase(adminUserRepo, statsRepo, hasher)

	return &App{
		Handlers: router.Handlers{
			Auth:       authhandler.NewAuthHandler(authUC, log),
			Links:      linkhandler.NewLinkHandler(linkUC, log),
			Categories: categoryhandler.NewCategoryHandler(categoryUC, log),
			Admin:      adminhandler.NewAdminHandler(adminUC, log),
		},
		Tokens: tokens,
	}
}
