package main

// @title Veggie Places Microservice API
// @version 1.0.0
// @description Сервис оценки мест OpenStreetMap с веганской/вегетарианской маркировкой.
// @description
// @description Основные возможности:
// @description - Классификация мест по diet:vegan / diet:vegetarian тегам
// @description - Нормализация атрибутов отображения (cuisine, адрес, часы работы, контакты)
// @description - Поиск подходящих мест в радиусе от точки
// @description - Отчёт о качестве данных в формате GeoJSON
// @description - Импорт выгрузок Overpass

// @contact.name API Support

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

	_ "github.com/veggieplaces-microservice/docs/swagger"
	"github.com/veggieplaces-microservice/internal/config"
	httpDelivery "github.com/veggieplaces-microservice/internal/delivery/http"
	"github.com/veggieplaces-microservice/internal/delivery/http/handler"
	"github.com/veggieplaces-microservice/internal/infrastructure/overpass"
	"github.com/veggieplaces-microservice/internal/pkg/logger"
	"github.com/veggieplaces-microservice/internal/repository/cache"
	"github.com/veggieplaces-microservice/internal/repository/postgres"
	redisRepo "github.com/veggieplaces-microservice/internal/repository/redis"
	"github.com/veggieplaces-microservice/internal/usecase"
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

	log.Info("Starting Veggie Places Microservice")
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
	placeRepo := postgres.NewPlaceRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	overpassRepo := overpass.NewLoader(log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	evaluateUC := usecase.NewEvaluateUseCase(log)

	placeUC := usecase.NewPlaceUseCase(placeRepo, log)

	qualityUC := usecase.NewQualityUseCase(
		placeRepo,
		cacheRepo,
		streamRepo,
		log,
		cfg.Cache.ReportTTL,
	)

	importUC := usecase.NewImportUseCase(placeRepo, overpassRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	evaluateHandler := handler.NewEvaluateHandler(evaluateUC, log)
	placeHandler := handler.NewPlaceHandler(placeUC, log)
	qualityHandler := handler.NewQualityHandler(qualityUC, log)
	importHandler := handler.NewImportHandler(importUC, cfg.Overpass.ExportFile, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		evaluateHandler,
		placeHandler,
		qualityHandler,
		importHandler,
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
