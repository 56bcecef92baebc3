package notification

import (
	"context"

	"github.com/saferide/saferide/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/saferide/saferide/services/notification SafetyClient

// SafetyClient calls back into the safety service over internal HTTP.
type SafetyClient interface {
	// LatestRideLocation returns the participant's most recently published
	// location for the given ride.
	LatestRideLocation(ctx context.Context, rideID, userID string) (*models.LocationRecord, error)
}
