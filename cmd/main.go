package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/geofence"
	v1 "github.com/shenikar/tourist_safety_system/internal/handler/http/v1"
	"github.com/shenikar/tourist_safety_system/internal/jobs"
	"github.com/shenikar/tourist_safety_system/internal/metrics"
	"github.com/shenikar/tourist_safety_system/internal/repository"
	"github.com/shenikar/tourist_safety_system/internal/service"
	"github.com/shenikar/tourist_safety_system/internal/sos"
	"github.com/shenikar/tourist_safety_system/internal/webhook"
	"github.com/shenikar/tourist_safety_system/pkg/clock"
	"github.com/shenikar/tourist_safety_system/pkg/logger"
	"github.com/shenikar/tourist_safety_system/pkg/postgres"
	redisclient "github.com/shenikar/tourist_safety_system/pkg/redis"
	"github.com/shenikar/tourist_safety_system/pkg/tracing"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/tourist_safety_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 5 * time.Second

// @title Tourist Safety System API
// @version 1.0
// @description Geofence alerts, hazard layers, SOS flow and help requests for the tourist safety app.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	version, err := postgres.Migrate(cfg.MigrationsPath, cfg.DatabaseURL)
	if err != nil {
		return err
	}

	log.WithField("version", version).Info("Database migrations applied successfully")
	return nil
}

func loadEngine(cfg *config.Config, notifier geofence.Notifier, log *logrus.Logger) (*geofence.Engine, error) {
	dataset, err := geofence.LoadDataset(cfg.RestrictedAreasPath, cfg.SachetDataPath, cfg.LandslideDataPath)
	if err != nil {
		return nil, fmt.Errorf("could not load map dataset: %w", err)
	}

	log.WithFields(logrus.Fields{
		"restricted_areas": len(dataset.Areas),
		"hazards":          len(dataset.Hazards),
		"skipped":          dataset.Skipped,
	}).Info("Map dataset loaded")

	return geofence.NewEngine(dataset.Areas, dataset.Hazards, notifier, log,
		geofence.WithNotifyTimeout(cfg.NotificationTimeout)), nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Трассировка
	shutdownTracing, err := tracing.Init(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Вебхуки: издатель и воркер доставки
	webhookPublisher := webhook.NewRedisPublisher(redisClient)
	webhookWorker := webhook.NewWorker(redisClient, log, cfg)
	workerDone := webhookWorker.Start(ctx)

	// Репозитории
	notificationRepo := repository.NewNotificationRepository(dbpool)
	complaintRepo := repository.NewComplaintRepository(dbpool, redisClient, cfg.ComplaintCacheTTL)
	locationRepo := repository.NewLocationCheckRepository(dbpool, redisClient)
	tripRepo := repository.NewTripRepository(dbpool)

	// Сервис уведомлений нужен движку геозон, поэтому создается первым
	notificationService := service.NewNotificationService(notificationRepo, webhookPublisher, log)

	engine, err := loadEngine(cfg, notificationService, log)
	if err != nil {
		log.Fatalf("Failed to initialize geofence engine: %v", err)
	}

	clk := clock.Real()
	complaintService := service.NewComplaintService(complaintRepo, webhookPublisher, log)
	mapService := service.NewMapService(engine, locationRepo, cfg, log)
	tripService := service.NewTripService(tripRepo, clk, log)
	sosService := service.NewSOSService(sos.NewRegistry(clk, sos.ResponderMaps{}, log), complaintService, mapService, cfg, log)

	// Фоновые задачи
	scheduler, err := jobs.NewScheduler(sosService, mapService, cfg, clk, log)
	if err != nil {
		log.Fatalf("Failed to configure scheduler: %v", err)
	}
	scheduler.Start()

	// Хэндлеры
	handler := v1.NewHandler(notificationService, complaintService, mapService, sosService, tripService, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), tracing.GinMiddleware(), metrics.GinMiddleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
	scheduler.Stop(shutdownCtx)

	// Обработчики завершены, дожидаемся отправки уведомлений об опасностях
	if err := engine.Wait(shutdownCtx); err != nil {
		log.WithError(err).Warn("Hazard notifications did not finish in time")
	}

	cancel()
	select {
	case <-workerDone:
	case <-shutdownCtx.Done():
		log.Warn("Webhook worker did not stop in time")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.WithError(err).Warn("Failed to flush traces")
	}

	log.Info("Server gracefully stopped")
}
