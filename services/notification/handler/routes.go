package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/saferide/saferide/internal/pkg/middleware"
	"github.com/saferide/saferide/internal/pkg/models"
	"github.com/saferide/saferide/services/notification"
	httpHandler "github.com/saferide/saferide/services/notification/handler/http"
)

// HTTPHandler combines all handlers for the notification service
type HTTPHandler struct {
	notificationHTTP *httpHandler.NotificationHandler
	cfg              *models.Config
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(notificationUC notification.NotificationUC, cfg *models.Config) *HTTPHandler {
	return &HTTPHandler{
		notificationHTTP: httpHandler.NewNotificationHandler(notificationUC),
		cfg:              cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", middleware.ValidateAPIKey("safety-service"))
	internal.POST("/notifications/sos", h.notificationHTTP.SendSOSNotifications)
}
