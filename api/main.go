package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rogerio-castellano/product-catalog/internal/antiforgery"
	"github.com/rogerio-castellano/product-catalog/internal/config"
	"github.com/rogerio-castellano/product-catalog/internal/db"
	api "github.com/rogerio-castellano/product-catalog/internal/http"
	"github.com/rogerio-castellano/product-catalog/internal/http/handlers"
	rl "github.com/rogerio-castellano/product-catalog/internal/http/rate_limiter"
	"github.com/rogerio-castellano/product-catalog/internal/logging"
	"github.com/rogerio-castellano/product-catalog/internal/redissvc"
	"github.com/rogerio-castellano/product-catalog/internal/repo"
	"go.uber.org/zap"
)

// @title Product Catalog
// @version 1.0
// @description Product catalog pages: list, details, create, edit, delete and search.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("❌ Could not build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("❌ Could not connect to database", zap.Error(err))
	}
	defer db.Close(database)

	if cfg.AutoMigrate {
		if err := db.Migrate(ctx, database); err != nil {
			logger.Fatal("❌ Could not migrate database", zap.Error(err))
		}
	}
	if cfg.Seed {
		if err := db.Seed(ctx, database); err != nil {
			logger.Fatal("❌ Could not seed database", zap.Error(err))
		}
	}

	var references repo.ReferenceRepository = repo.NewGormReferenceRepository(database, cfg.QueryTimeout)
	if cfg.RedisAddr != "" {
		redisService, err := redissvc.Connect(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Fatal("❌ Could not connect to Redis", zap.Error(err))
		}
		defer redisService.Close()
		references = repo.NewCachedReferenceRepository(references, redisService, cfg.ReferenceCacheTTL, logger)
	}

	handlers.SetProductRepo(repo.NewGormProductRepository(database, cfg.QueryTimeout))
	handlers.SetReferenceRepo(references)
	handlers.SetLogger(logger)

	limiter := rl.NewLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.StartVisitorCleanupLoop(ctx, time.Minute)

	r := api.NewRouter(api.RouterConfig{
		Protector: antiforgery.NewProtector([]byte(cfg.AntiforgerySecret), cfg.AntiforgeryTTL, cfg.SecureCookies),
		Limiter:   limiter,
		Logger:    logger,
		Health: func(ctx context.Context) error {
			return db.Ping(ctx, database)
		},
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("✅ Server running", zap.String("addr", cfg.Addr()))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server stopped", zap.Error(err))
	}
	logger.Info("server stopped")
}
