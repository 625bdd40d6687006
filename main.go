package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"

	"securite2ie_backend/internals/configs"
	database "securite2ie_backend/internals/databases"
	helper "securite2ie_backend/internals/helpers"
	scheduler "securite2ie_backend/internals/features/users/auth/scheduler"
	"securite2ie_backend/internals/logging"
	middlewares "securite2ie_backend/internals/middlewares"
	routes "securite2ie_backend/internals/route"
)

func main() {
	logging.InitLogger(os.Getenv("LOG_LEVEL"))
	defer logging.Sync()

	configs.LoadEnv()
	logging.SetLevel(configs.GetEnv("LOG_LEVEL"))

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ErrorHandler:          helper.FiberErrorHandler,
	})

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)
	middlewares.InitLimiterStorage()

	// 🔌 DB connect + pool + schema + warm-up
	database.ConnectDB()
	database.TunePool()
	if err := database.Migrate(database.DB); err != nil {
		logging.Fatal("❌ migration failed", zap.Error(err))
	}
	database.WarmUpQueries()

	// ⏱ scheduler once the DB is ready
	cleanup, err := scheduler.StartBlacklistCleanupScheduler(database.DB, configs.CleanupCron)
	if err != nil {
		logging.Fatal("❌ invalid TOKEN_BLACKLIST_CLEANUP_CRON", zap.String("expr", configs.CleanupCron), zap.Error(err))
	}

	routes.SetupRoutes(app, database.DB)

	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "5000")
	go func() {
		logging.Info("✅ Listening", zap.String("port", port))
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			logging.Fatal("server error", zap.Error(err))
		}
	}()

	// graceful shutdown: stop intake, then the scheduler, then the pools
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logging.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	<-cleanup.Stop().Done()
	middlewares.CloseLimiterStorage()
	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
