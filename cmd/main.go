package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/safety_scoring_system/internal/config"
	v1 "github.com/shenikar/safety_scoring_system/internal/handler/http/v1"
	"github.com/shenikar/safety_scoring_system/internal/metrics"
	"github.com/shenikar/safety_scoring_system/internal/recompute"
	"github.com/shenikar/safety_scoring_system/internal/repository"
	"github.com/shenikar/safety_scoring_system/internal/scoring"
	"github.com/shenikar/safety_scoring_system/internal/service"
	"github.com/shenikar/safety_scoring_system/pkg/logger"
	"github.com/shenikar/safety_scoring_system/pkg/postgres"
	redisclient "github.com/shenikar/safety_scoring_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/safety_scoring_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Safety Scoring API
// @version 1.0
// @description Incident reporting, environmental audits and region safety scores.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	log.Info("Running database migrations...")
	if err := postgres.RunMigrations(cfg.MigrationsPath, cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	log.Info("Database migrations applied successfully")

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.RedisPoolSize)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Алгоритм подсчета и метрики
	engine, err := scoring.NewEngine(cfg.Scoring)
	if err != nil {
		log.Fatalf("Invalid scoring configuration: %v", err)
	}
	appMetrics := metrics.New(prometheus.DefaultRegisterer)

	// Инициализация репозиториев
	incidentRepo := repository.NewIncidentRepository(dbpool)
	regionRepo := repository.NewRegionRepository(dbpool, redisClient, cfg.RegionCacheTTL)

	// Очередь пересчета регионов
	publisher := recompute.NewRedisPublisher(redisClient)

	// Инициализация сервисов
	scoringService := service.NewScoringService(incidentRepo, regionRepo, publisher, engine, log, appMetrics)
	incidentService := service.NewIncidentService(incidentRepo, scoringService, engine, log)
	regionService := service.NewRegionService(regionRepo, scoringService, log)

	// Запуск воркеров пересчета
	worker := recompute.NewWorker(redisClient, scoringService, log, cfg)
	worker.Start(ctx)

	// Плановый пересчет для учета затухания
	scheduler, err := recompute.NewScheduler(scoringService, log, cfg.RecomputeSchedule)
	if err != nil {
		log.Fatalf("Failed to create recompute scheduler: %v", err)
	}
	scheduler.Start()

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, regionService, scoringService, publisher, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики Prometheus и Swagger UI
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	if err := scheduler.Stop(shutdownCtx); err != nil {
		log.Errorf("Recompute scheduler did not stop in time: %v", err)
	}

	// Останавливаем воркеры и ждем завершения текущих задач
	cancel()
	worker.Wait()

	log.Info("Server gracefully stopped")
}
