package gateway

import (
	httpclient "github.com/saferide/saferide/internal/pkg/http"
	"github.com/saferide/saferide/internal/pkg/models"
	natspkg "github.com/saferide/saferide/internal/pkg/nats"
	"github.com/saferide/saferide/services/safety"
)

// safetyGW handles safety gateway operations over NATS and HTTP
type safetyGW struct {
	natsClient         *natspkg.Client
	notificationClient *httpclient.APIKeyClient
}

// NewSafetyGW creates a new unified gateway instance with NATS and an
// API-key-authenticated HTTP client for the notification service.
func NewSafetyGW(natsClient *natspkg.Client, cfg *models.Config) safety.SafetyGW {
	return &safetyGW{
		natsClient:         natsClient,
		notificationClient: httpclient.NewAPIKeyClient(&cfg.APIKey, "safety-service", cfg.Services.NotificationServiceURL),
	}
}
