package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/saferide/saferide/internal/pkg/middleware"
	"github.com/saferide/saferide/internal/pkg/models"
	"github.com/saferide/saferide/services/safety"
	httpHandler "github.com/saferide/saferide/services/safety/handler/http"
)

// HTTPHandler combines all handlers for the safety service
type HTTPHandler struct {
	trackingHTTP *httpHandler.TrackingHandler
	sosHTTP      *httpHandler.SOSHandler
	cfg          *models.Config
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(safetyUC safety.SafetyUC, cfg *models.Config) *HTTPHandler {
	return &HTTPHandler{
		trackingHTTP: httpHandler.NewTrackingHandler(safetyUC),
		sosHTTP:      httpHandler.NewSOSHandler(safetyUC),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	// Tracking session lifecycle and device fix ingest
	rides := e.Group("/rides")
	rides.POST("/:id/tracking", h.trackingHTTP.StartTracking)
	rides.DELETE("/:id/tracking", h.trackingHTTP.StopTracking)
	rides.GET("/:id/tracking", h.trackingHTTP.TrackingStatus)
	rides.POST("/:id/position", h.trackingHTTP.IngestPosition)

	// SOS activation
	e.POST("/sos", h.sosHTTP.ActivateSOS)

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", middleware.ValidateAPIKey("notification-service"))
	internal.GET("/rides/:id/location", h.trackingHTTP.LatestLocation)
}
