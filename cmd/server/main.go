package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"eanmble/internal/cache"
	"eanmble/internal/config"
	"eanmble/internal/db"
	"eanmble/internal/ghastly"
	"eanmble/internal/handler"
	"eanmble/internal/model"
	"eanmble/internal/repository"
	"eanmble/internal/router"
	"eanmble/internal/service"
	"eanmble/internal/session"
	"eanmble/internal/view"
)

func main() {
	cfg := config.Load()

	e := echo.New()

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}
	e.Renderer = renderer

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	sessionStore := session.NewStore(cacheClient)
	sessions := session.NewManager(session.NewCookieCodec(cfg.SessionSecret), sessionStore)

	apiClient := ghastly.NewClient(cfg.APIBaseURL)

	userRepo := repository.NewUserRepository(gormDB)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(apiClient, sessionStore)

	pageHandler := handler.NewPageHandler(sessions)
	authHandler := handler.NewAuthHandler(apiClient, authService, userService, sessions)
	adminHandler := handler.NewAdminHandler(apiClient, authService, sessions)
	userHandler := handler.NewUserHandler(apiClient, authService, sessions)

	router.Register(e, sessions, pageHandler, authHandler, adminHandler, userHandler)

	log.Printf("ghastly api base url: %s", cfg.APIBaseURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
