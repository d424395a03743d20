package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/limitlessinfotechsolution/Limitless-sub004/config"
	"github.com/limitlessinfotechsolution/Limitless-sub004/db"
	"github.com/limitlessinfotechsolution/Limitless-sub004/internal/auth/handler"
	repo "github.com/limitlessinfotechsolution/Limitless-sub004/internal/auth/repository/postgres"
	"github.com/limitlessinfotechsolution/Limitless-sub004/internal/auth/service"
	"github.com/limitlessinfotechsolution/Limitless-sub004/internal/ratelimit"
)

func main() {
	cfg := config.Load()

	dbPool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer dbPool.Close()

	repository := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenHashSecret, cfg.SessionTTLMin, cfg.RefreshTTLMin)
	authService := service.NewAuthService(repository, tokenService, cfg.TOTPSkew)
	sessionService := service.NewSessionService(repository)
	authHandler := handler.NewAuthHandler(authService, sessionService, tokenService, cfg.IsProduction())

	limiter := ratelimit.New(time.Duration(cfg.RateLimitWindow)*time.Minute, cfg.RateLimitMax)
	stop := make(chan struct{})
	defer close(stop)
	go limiter.SweepLoop(time.Duration(cfg.RateLimitWindow)*time.Minute, stop)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	handler.RegisterRoutes(app, authHandler, limiter)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
