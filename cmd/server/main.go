package main

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	_ "toolhub/docs" // swagger docs

	"toolhub/internal/auth"
	"toolhub/internal/authz"
	"toolhub/internal/cache"
	"toolhub/internal/config"
	"toolhub/internal/db"
	"toolhub/internal/handler"
	"toolhub/internal/logger"
	"toolhub/internal/model"
	"toolhub/internal/repository"
	"toolhub/internal/router"
	"toolhub/internal/service"
)

// @title Toolhub API
// @version 1.0
// @description User accounts, session-cookie authentication, favorites and threaded comments for the tools directory.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Tool{},
		&model.Favorite{},
		&model.Comment{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, running without cache or signout revocation")
	}

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	toolRepo := repository.NewToolRepository(gormDB)
	favoriteRepo := repository.NewFavoriteRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)
	policy := authz.NewPolicy(cfg.AdminToggleOpen)
	if cfg.AdminToggleOpen {
		log.Warn().Msg("ADMIN_TOGGLE_OPEN=true: any authenticated user may toggle admin flags")
	}

	// Services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore, cfg.DefaultAvatarURL)
	userService := service.NewUserService(userRepo, policy, cacheClient)
	favoritesService := service.NewFavoritesService(favoriteRepo, toolRepo)
	commentService := service.NewCommentService(commentRepo, toolRepo)

	e := echo.New()
	e.HideBanner = true

	router.Register(e, router.Deps{
		Logger:     log,
		JWTService: jwtService,
		TokenStore: tokenStore,
		Users:      userRepo,
		Cache:      cacheClient,
		Auth:       handler.NewAuthHandler(authService, cfg.CookieSecure),
		User:       handler.NewUserHandler(userService),
		Admin:      handler.NewAdminHandler(userService),
		Favorites:  handler.NewFavoritesHandler(favoritesService),
		Comments:   handler.NewCommentHandler(commentService),
	})

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
