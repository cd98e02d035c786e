package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/pageza/geladeira/backend/config"
	"github.com/pageza/geladeira/backend/internal/api"
	"github.com/pageza/geladeira/backend/internal/catalog"
	"github.com/pageza/geladeira/backend/internal/database"
	"github.com/pageza/geladeira/backend/internal/logger"
	"github.com/pageza/geladeira/backend/internal/middleware"
	"github.com/pageza/geladeira/backend/internal/server"
	"github.com/pageza/geladeira/backend/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	recipeCatalog := catalog.Default()
	if cfg.CatalogFile != "" {
		recipeCatalog, err = catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			zl.Fatal("failed to load catalog", zap.Error(err))
		}
	}
	zl.Info("recipe catalog ready", zap.Int("templates", recipeCatalog.Len()))

	inventory := service.NewInventoryService(zl)
	if cfg.SeedInventory {
		if err := inventory.Seed(); err != nil {
			zl.Fatal("failed to seed inventory", zap.Error(err))
		}
	}

	limitCfg := middleware.NewRecipeGenerationConfig(cfg.RateLimitRequests, cfg.RateLimitWindow)
	var limiter middleware.Limiter
	if cfg.RedisEnabled() {
		client, err := database.NewRedisClient(ctx, cfg, zl)
		if err != nil {
			zl.Warn("redis unavailable, using in-process rate limiting", zap.Error(err))
		} else {
			defer client.Close()
			limiter = middleware.NewRedisRateLimiter(client, limitCfg)
		}
	}
	if limiter == nil {
		local := middleware.NewLocalRateLimiter(limitCfg)
		local.StartJanitor(ctx, cfg.RateLimitWindow)
		limiter = local
	}

	srv := server.New(cfg, api.Services{
		Recipes:     service.NewRecipeService(recipeCatalog, zl),
		Inventory:   inventory,
		RecipeLimit: middleware.RateLimitMiddleware(limiter, zl),
	}, zl)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		if err != nil {
			zl.Fatal("server error", zap.Error(err))
		}
	case <-ctx.Done():
		zl.Info("shutdown signal received")
	}

	if err := srv.Shutdown(context.Background()); err != nil {
		zl.Error("server shutdown error", zap.Error(err))
		return
	}
	zl.Info("server stopped")
}
