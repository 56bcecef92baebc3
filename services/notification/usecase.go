package notification

import (
	"context"

	"github.com/saferide/saferide/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/saferide/saferide/services/notification NotificationUC

// NotificationUC is the SOS notification fan-out use case
type NotificationUC interface {
	// DispatchSOS composes the alert message and attempts delivery to every
	// contact independently, returning one result per contact.
	DispatchSOS(ctx context.Context, req *models.SOSNotificationRequest) (*models.SOSNotificationResponse, error)
}
