package usecase

import (
	"github.com/saferide/saferide/internal/pkg/models"
	"github.com/saferide/saferide/services/notification"
)

// NotificationUC implements the SOS fan-out use case
type NotificationUC struct {
	cfg           *models.Config
	profileRepo   notification.ProfileRepo
	safetyClient  notification.SafetyClient
	smsProvider   notification.SMSProvider
	emailProvider notification.EmailProvider
}

// NewNotificationUC creates a new notification usecase instance
func NewNotificationUC(
	cfg *models.Config,
	profileRepo notification.ProfileRepo,
	safetyClient notification.SafetyClient,
	smsProvider notification.SMSProvider,
	emailProvider notification.EmailProvider,
) *NotificationUC {
	return &NotificationUC{
		cfg:           cfg,
		profileRepo:   profileRepo,
		safetyClient:  safetyClient,
		smsProvider:   smsProvider,
		emailProvider: emailProvider,
	}
}
