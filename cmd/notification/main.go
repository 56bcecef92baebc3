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
	"github.com/saferide/saferide/internal/pkg/server"
	"github.com/saferide/saferide/services/notification/gateway"
	"github.com/saferide/saferide/services/notification/handler"
	"github.com/saferide/saferide/services/notification/provider"
	"github.com/saferide/saferide/services/notification/repository"
	"github.com/saferide/saferide/services/notification/usecase"
)

func main() {
	appName := "notification-service"
	configPath := "config/notification.env"
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

	// Register component cleanup for graceful shutdown
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	// Initialize repository
	profileRepo := repository.NewProfileRepo(postgresClient.GetDB())

	// Initialize safety service client
	safetyClient := gateway.NewSafetyClient(configs)

	// Initialize delivery providers (log providers until real transports are configured)
	smsProvider := provider.NewLogSMSProvider()
	emailProvider := provider.NewLogEmailProvider()

	// Initialize usecase
	notificationUC := usecase.NewNotificationUC(configs, profileRepo, safetyClient, smsProvider, emailProvider)

	// Initialize handlers
	notificationHandler := handler.NewHTTPHandler(notificationUC, configs)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	notificationHandler.RegisterRoutes(e)

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
