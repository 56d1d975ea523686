package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/JESURAJA7/Roger-Keys/internal/gateway"
	"github.com/JESURAJA7/Roger-Keys/internal/gateway/middleware"
	"github.com/JESURAJA7/Roger-Keys/internal/modules/catalog"
	"github.com/JESURAJA7/Roger-Keys/internal/modules/filestorage"
	"github.com/JESURAJA7/Roger-Keys/internal/modules/library"
	"github.com/JESURAJA7/Roger-Keys/internal/modules/subscriber"
	"github.com/JESURAJA7/Roger-Keys/internal/shared/infrastructure/config"
	"github.com/JESURAJA7/Roger-Keys/internal/shared/infrastructure/database"
	"github.com/JESURAJA7/Roger-Keys/pkg/migration"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()
	ctx := context.Background()

	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		logger.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to postgres", "host", cfg.Database.Host, "db", cfg.Database.DBName)

	if err := migration.AutoMigrate(cfg.Database.URL(), "migrations", logger); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Redis is optional: without it track listings fall through to postgres
	redisClient, err := database.NewRedis(cfg.Redis)
	if err != nil {
		logger.Warn("redis unavailable, listing cache disabled", "error", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	storageModule, err := filestorage.NewModule(ctx, cfg.FileStorage)
	if err != nil {
		logger.Error("failed to initialize file storage", "error", err)
		os.Exit(1)
	}

	catalogModule := catalog.NewModule(db, storageModule.Service(), redisClient, cfg.Catalog)
	subscriberModule := subscriber.NewModule(db)
	libraryModule := library.NewModule(cfg.Library, cfg.Catalog.DefaultPageSize)

	mux := gateway.SetupRoutes(gateway.RouterConfig{
		TrackHandler:      catalogModule.HTTPHandler(),
		SubscriberHandler: subscriberModule.HTTPHandler(),
		LibraryHandler:    libraryModule.HTTPHandler(),
	})

	handler := middleware.CORSMiddleware(middleware.PrometheusMiddleware(mux), cfg.Server.AllowedOrigins)

	server := gateway.NewServer(cfg.Server.Port, handler, logger)
	if err := server.Start(); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
