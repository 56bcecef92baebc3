package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/saferide/saferide/internal/pkg/logger"
	"github.com/saferide/saferide/internal/pkg/models"
	"github.com/saferide/saferide/internal/utils"
	"github.com/saferide/saferide/services/notification"
)

// NotificationHandler handles HTTP requests for notification dispatch
type NotificationHandler struct {
	notificationUC notification.NotificationUC
}

// NewNotificationHandler creates a new notification HTTP handler
func NewNotificationHandler(notificationUC notification.NotificationUC) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: notificationUC,
	}
}

// SendSOSNotifications fans out an SOS alert to the supplied contacts
func (h *NotificationHandler) SendSOSNotifications(c echo.Context) error {
	var req models.SOSNotificationRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if req.AlertID == "" || req.UserID == "" {
		return utils.BadRequestResponse(c, "alert_id and user_id are required")
	}

	resp, err := h.notificationUC.DispatchSOS(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to dispatch SOS notifications",
			logger.String("alert_id", req.AlertID),
			logger.ErrorField(err))
		return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "failed to send SOS alerts")
	}

	return utils.SuccessResponse(c, http.StatusOK, "SOS alerts sent to emergency contacts", resp)
}
