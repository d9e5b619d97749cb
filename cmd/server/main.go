package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/ReddyRohith-E/MeFit-sub000/internal/cache"
	"github.com/ReddyRohith-E/MeFit-sub000/internal/config"
	"github.com/ReddyRohith-E/MeFit-sub000/internal/database"
	"github.com/ReddyRohith-E/MeFit-sub000/internal/logger"
	"github.com/ReddyRohith-E/MeFit-sub000/internal/metrics"
	"github.com/ReddyRohith-E/MeFit-sub000/internal/routes"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger := logger.New(cfg.LogFile, cfg.Development())
	defer func() {
		_ = zapLogger.Sync()
	}()

	// 2. Connect to Database
	if cfg.DBUrl == "" {
		zapLogger.Fatal("DB_URL is required")
	}
	if err := database.ConnectDB(cfg.DBUrl); err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB()

	// 3. Optional Redis catalog cache
	var catalogCache *cache.Cache
	if cfg.RedisAddr != "" {
		catalogCache, err = cache.New(context.Background(), cfg.RedisAddr)
		if err != nil {
			zapLogger.Warn("Redis unavailable, continuing without catalog cache", zap.Error(err))
			catalogCache = nil
		} else {
			defer catalogCache.Close()
		}
	}

	if cfg.EnableMetrics {
		metrics.Register()
	}

	// 4. Setup Fiber
	app := fiber.New()

	app.Use(cors.New())
	app.Use(fiberlogger.New())
	app.Use(recover.New())

	routes.SetupRoutes(app, routes.Dependencies{
		DB:     database.DB,
		Cache:  catalogCache,
		Config: cfg,
		Logger: zapLogger,
	})

	// 5. Start Server
	zapLogger.Info("Server starting", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("Server failed to start", zap.Error(err))
	}
}
