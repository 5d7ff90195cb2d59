package main

// @title Restoration Tracker API
// @version 1.0.0
// @description Backend for tracking habitat restoration projects and plans: project aggregates with contacts, funding sources, IUCN classifications, partnerships, objectives, locations, focal species and permits, plus team rosters and a public read surface.

// @contact.name API Support
// @contact.email support@restoration-tracker.org

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/restoration-tracker/docs/swagger"
	"github.com/restoration-tracker/internal/config"
	httpDelivery "github.com/restoration-tracker/internal/delivery/http"
	"github.com/restoration-tracker/internal/delivery/http/handler"
	"github.com/restoration-tracker/internal/infrastructure/taxonomy"
	"github.com/restoration-tracker/internal/pkg/logger"
	"github.com/restoration-tracker/internal/repository/cache"
	"github.com/restoration-tracker/internal/repository/postgres"
	redisRepo "github.com/restoration-tracker/internal/repository/redis"
	"github.com/restoration-tracker/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Restoration Tracker API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	projectRepo := postgres.NewProjectRepository(db)
	participationRepo := postgres.NewParticipationRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	taxonomyRepo := taxonomy.NewTaxonomyClient(&cfg.Taxonomy, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	projectUC := usecase.NewProjectUseCase(
		db,
		projectRepo,
		participationRepo,
		taxonomyRepo,
		cacheRepo,
		streamRepo,
		log,
	)
	participantUC := usecase.NewParticipantUseCase(db, participationRepo, log)
	publicUC := usecase.NewPublicUseCase(projectUC, cacheRepo, cfg.Cache, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	projectHandler := handler.NewProjectHandler(projectUC, log)
	participantHandler := handler.NewParticipantHandler(participantUC, log)
	publicHandler := handler.NewPublicHandler(publicUC, log)

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		participationRepo,
		projectHandler,
		participantHandler,
		publicHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
