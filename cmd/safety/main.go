package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/saferide/saferide/internal/pkg/config"
	"github.com/saferide/saferide/internal/pkg/database"
	"github.com/saferide/saferide/internal/pkg/logger"
	"github.com/saferide/saferide/internal/pkg/nats"
	"github.com/saferide/saferide/internal/pkg/server"
	"github.com/saferide/saferide/services/safety/gateway"
	"github.com/saferide/saferide/services/safety/handler"
	"github.com/saferide/saferide/services/safety/repository"
	"github.com/saferide/saferide/services/safety/usecase"
)

func main() {
	appName := "safety-service"
	configPath := "config/safety.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS client
	natsClient, err := nats.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Register component cleanup for graceful shutdown
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	// Initialize repositories
	locationRepo := repository.NewLocationRepository(configs, postgresClient.GetDB(), redisClient)
	alertRepo := repository.NewAlertRepository(postgresClient.GetDB())
	contactRepo := repository.NewContactRepository(postgresClient.GetDB())

	// Initialize gateway
	safetyGW := gateway.NewSafetyGW(natsClient, configs)

	// Initialize usecase
	safetyUC := usecase.NewSafetyUC(configs, locationRepo, alertRepo, contactRepo, safetyGW)

	// Initialize handlers
	safetyHandler := handler.NewHTTPHandler(safetyUC, configs)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	safetyHandler.RegisterRoutes(e)

	// Start server with graceful shutdown
	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)
	serverErr := gracefulServer.Start()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown error", logger.Err(err))
	}

	if serverErr != nil {
		zapLogger.Fatal("Server error", logger.Err(serverErr))
	}
}
