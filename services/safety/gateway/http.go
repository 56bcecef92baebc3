package gateway

import (
	"context"
	"fmt"

	"github.com/saferide/saferide/internal/pkg/logger"
	"github.com/saferide/saferide/internal/pkg/models"
)

// sosNotificationEnvelope mirrors the notification service response wrapper
type sosNotificationEnvelope struct {
	Success bool                            `json:"success"`
	Message string                          `json:"message,omitempty"`
	Data    *models.SOSNotificationResponse `json:"data,omitempty"`
	Error   string                          `json:"error,omitempty"`
}

// SendSOSNotifications invokes the notification service fan-out endpoint via HTTP
func (g *safetyGW) SendSOSNotifications(ctx context.Context, req *models.SOSNotificationRequest) (*models.SOSNotificationResponse, error) {
	var envelope sosNotificationEnvelope
	err := g.notificationClient.PostJSON(ctx, "/internal/notifications/sos", req, &envelope)
	if err != nil {
		logger.Error("Failed to send SOS notifications",
			logger.String("alert_id", req.AlertID),
			logger.String("user_id", req.UserID),
			logger.ErrorField(err))
		return nil, fmt.Errorf("failed to send sos notifications: %w", err)
	}

	if !envelope.Success {
		return nil, fmt.Errorf("notification service rejected sos fan-out: %s", envelope.Error)
	}

	return envelope.Data, nil
}
