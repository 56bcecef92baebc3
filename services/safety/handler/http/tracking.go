package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/saferide/saferide/internal/pkg/logger"
	"github.com/saferide/saferide/internal/pkg/models"
	"github.com/saferide/saferide/internal/utils"
	"github.com/saferide/saferide/services/safety"
)

// TrackingHandler handles HTTP requests for live tracking operations
type TrackingHandler struct {
	safetyUC safety.SafetyUC
}

// NewTrackingHandler creates a new tracking HTTP handler
func NewTrackingHandler(safetyUC safety.SafetyUC) *TrackingHandler {
	return &TrackingHandler{
		safetyUC: safetyUC,
	}
}

// StartTracking opens a tracking session for a ride participant
func (h *TrackingHandler) StartTracking(c echo.Context) error {
	rideID := c.Param("id")
	if rideID == "" {
		return utils.BadRequestResponse(c, "ride_id is required")
	}

	var req models.StartTrackingRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}
	req.RideID = rideID

	if err := h.safetyUC.StartTracking(c.Request().Context(), &req); err != nil {
		switch {
		case errors.Is(err, safety.ErrSessionActive):
			return utils.ConflictResponse(c, "tracking session already active")
		case errors.Is(err, safety.ErrSamplerUnsupported):
			return utils.BadRequestResponse(c, "position sensor not supported on this device")
		default:
			logger.Error("Failed to start tracking",
				logger.String("ride_id", rideID),
				logger.String("user_id", req.UserID),
				logger.ErrorField(err))
			return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "failed to start tracking")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tracking started", map[string]string{
		"ride_id": rideID,
		"user_id": req.UserID,
	})
}

// StopTracking tears down a tracking session
func (h *TrackingHandler) StopTracking(c echo.Context) error {
	rideID := c.Param("id")
	userID := c.QueryParam("user_id")
	if rideID == "" || userID == "" {
		return utils.BadRequestResponse(c, "ride_id and user_id are required")
	}

	if err := h.safetyUC.StopTracking(c.Request().Context(), rideID, userID); err != nil {
		if errors.Is(err, safety.ErrSessionNotFound) {
			return utils.NotFoundResponse(c, "tracking session not found")
		}
		logger.Error("Failed to stop tracking",
			logger.String("ride_id", rideID),
			logger.String("user_id", userID),
			logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "failed to stop tracking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tracking stopped", map[string]string{
		"ride_id": rideID,
		"user_id": userID,
	})
}

// TrackingStatus returns the current view of a tracking session
func (h *TrackingHandler) TrackingStatus(c echo.Context) error {
	rideID := c.Param("id")
	userID := c.QueryParam("user_id")
	if rideID == "" || userID == "" {
		return utils.BadRequestResponse(c, "ride_id and user_id are required")
	}

	status, err := h.safetyUC.TrackingStatus(c.Request().Context(), rideID, userID)
	if err != nil {
		if errors.Is(err, safety.ErrSessionNotFound) {
			return utils.NotFoundResponse(c, "tracking session not found")
		}
		logger.Error("Failed to get tracking status",
			logger.String("ride_id", rideID),
			logger.String("user_id", userID),
			logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "failed to get tracking status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tracking status retrieved", status)
}

// IngestPosition accepts a device position fix for an active session
func (h *TrackingHandler) IngestPosition(c echo.Context) error {
	rideID := c.Param("id")
	if rideID == "" {
		return utils.BadRequestResponse(c, "ride_id is required")
	}

	var req models.IngestPositionRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if req.UserID == "" {
		return utils.BadRequestResponse(c, "user_id is required")
	}
	userID := req.UserID

	if err := h.safetyUC.IngestPosition(c.Request().Context(), rideID, userID, req.PositionSample); err != nil {
		if errors.Is(err, safety.ErrSessionNotFound) {
			return utils.NotFoundResponse(c, "tracking session not found")
		}
		logger.Error("Failed to ingest position",
			logger.String("ride_id", rideID),
			logger.String("user_id", userID),
			logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid position sample")
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "Position accepted", nil)
}

// LatestLocation returns the latest published location of a ride participant
func (h *TrackingHandler) LatestLocation(c echo.Context) error {
	rideID := c.Param("id")
	userID := c.QueryParam("user_id")
	if rideID == "" || userID == "" {
		return utils.BadRequestResponse(c, "ride_id and user_id are required")
	}

	record, err := h.safetyUC.LatestLocation(c.Request().Context(), rideID, userID)
	if err != nil {
		return utils.NotFoundResponse(c, "location not found")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location retrieved", record)
}
