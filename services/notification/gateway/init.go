package gateway

import (
	httpclient "github.com/saferide/saferide/internal/pkg/http"
	"github.com/saferide/saferide/internal/pkg/models"
	"github.com/saferide/saferide/services/notification"
)

// safetyClient implements the notification.SafetyClient interface
type safetyClient struct {
	client *httpclient.APIKeyClient
}

// NewSafetyClient creates an internal HTTP client for the safety service
func NewSafetyClient(cfg *models.Config) notification.SafetyClient {
	return &safetyClient{
		client: httpclient.NewAPIKeyClient(&cfg.APIKey, "notification-service", cfg.Services.SafetyServiceURL),
	}
}
