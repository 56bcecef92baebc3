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

// SOSHandler handles HTTP requests for SOS activation
type SOSHandler struct {
	safetyUC safety.SafetyUC
}

// NewSOSHandler creates a new SOS HTTP handler
func NewSOSHandler(safetyUC safety.SafetyUC) *SOSHandler {
	return &SOSHandler{
		safetyUC: safetyUC,
	}
}

// ActivateSOS records an SOS alert and triggers emergency contact notifications
func (h *SOSHandler) ActivateSOS(c echo.Context) error {
	var req models.SOSRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if req.UserID == "" {
		return utils.BadRequestResponse(c, "user_id is required")
	}

	activation, err := h.safetyUC.ActivateSOS(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, safety.ErrLocationUnavailable):
			return utils.BadRequestResponse(c, "Unable to determine your location. Please try again.")
		case errors.Is(err, safety.ErrNoContactsConfigured):
			return utils.BadRequestResponse(c, "No emergency contacts configured. Please add contacts in settings.")
		default:
			logger.Error("Failed to activate SOS",
				logger.String("user_id", req.UserID),
				logger.ErrorField(err))
			return utils.ErrorResponseHandler(c, http.StatusInternalServerError,
				"Failed to activate SOS. Please call emergency services directly.")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "SOS activated", activation)
}
