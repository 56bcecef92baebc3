package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/saferide/saferide/internal/pkg/logger"
	"github.com/saferide/saferide/internal/pkg/models"
)

// locationEnvelope mirrors the safety service response wrapper
type locationEnvelope struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Data    *models.LocationRecord `json:"data,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// LatestRideLocation fetches the participant's most recently published
// location from the safety service's internal read endpoint.
func (c *safetyClient) LatestRideLocation(ctx context.Context, rideID, userID string) (*models.LocationRecord, error) {
	endpoint := fmt.Sprintf("/internal/rides/%s/location?user_id=%s",
		url.PathEscape(rideID), url.QueryEscape(userID))

	var envelope locationEnvelope
	if err := c.client.GetJSON(ctx, endpoint, &envelope); err != nil {
		logger.Warn("Failed to fetch latest ride location",
			logger.String("ride_id", rideID),
			logger.String("user_id", userID),
			logger.ErrorField(err))
		return nil, fmt.Errorf("failed to fetch latest ride location: %w", err)
	}

	if !envelope.Success {
		return nil, fmt.Errorf("safety service rejected location read: %s", envelope.Error)
	}

	return envelope.Data, nil
}
