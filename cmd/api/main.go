package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopfront/admin-api/internal/api"
	"github.com/shopfront/admin-api/internal/api/handler"
	"github.com/shopfront/admin-api/internal/api/middleware"
	"github.com/shopfront/admin-api/internal/core/security"
	"github.com/shopfront/admin-api/internal/core/service"
	"github.com/shopfront/admin-api/internal/infrastructure/db/mongo"
	redisstore "github.com/shopfront/admin-api/internal/infrastructure/db/redis"
	"github.com/shopfront/admin-api/internal/infrastructure/storage"
	"github.com/shopfront/admin-api/internal/pkg/config"
	"github.com/shopfront/admin-api/pkg/logger"

	_ "github.com/shopfront/admin-api/docs"
)

// @title                       Shop Admin API
// @version                     1.0
// @description                 Product catalog, image uploads and session auth for the shop dashboard.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.MustLoad()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "shop-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB: connected lazily, warmed up here when reachable ---
	provider := mongo.NewProvider(mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if _, err := provider.Database(ctx); err != nil {
		log.Warn().Err(err).Msg("mongodb unavailable at startup, will retry on first request")
	} else {
		log.Info().Str("db", cfg.Mongo.Database).Msg("connected to mongodb")
	}

	// --- Redis: optional, backs the login throttle ---
	var limiter middleware.AttemptLimiter
	checks := map[string]handler.Check{}
	rdb, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, login throttling disabled")
	} else {
		defer rdb.Close()
		limiter = redisstore.NewLoginLimiter(rdb, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginWindow)
		checks["redis"] = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	}

	images, err := storage.NewLocalImageStore(cfg.Upload.Dir, "/uploads")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare upload directory")
	}

	// --- Core ---
	tokens := security.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL, security.WithUpdateAge(cfg.Auth.SessionUpdateAge))
	hasher := security.NewPasswordHasher(cfg.Auth.BcryptCost)
	users := mongo.NewUserRepository(provider)
	products := mongo.NewProductRepository(provider)

	e := api.NewRouter(api.Dependencies{
		Log:            log,
		Tokens:         tokens,
		Auth:           service.NewAuthService(users, hasher, tokens, log),
		Products:       service.NewProductService(products, log),
		Uploads:        service.NewUploadService(images, cfg.Upload.MaxBytes, log),
		Users:          users,
		Limiter:        limiter,
		DatabaseCheck:  provider.Ping,
		ExtraChecks:    checks,
		Cookie:         middleware.CookieOptions{Secure: cfg.Auth.CookieSecure, MaxAge: tokens.TTL()},
		UploadDir:      cfg.Upload.Dir,
		UploadMaxBytes: cfg.Upload.MaxBytes,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := provider.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongodb disconnect")
	}
}
