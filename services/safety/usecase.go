package safety

import (
	"context"

	"github.com/saferide/saferide/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/saferide/saferide/services/safety SafetyUC

// SafetyUC is the live safety use case: location tracking, counterpart
// sync, route-deviation monitoring and SOS dispatch.
type SafetyUC interface {
	// Tracking session lifecycle. At most one session publishes per
	// (ride, user) pair at any time.
	StartTracking(ctx context.Context, req *models.StartTrackingRequest) error
	StopTracking(ctx context.Context, rideID, userID string) error

	// Device fix ingest for an active session
	IngestPosition(ctx context.Context, rideID, userID string, sample models.PositionSample) error

	// Current session view: own sample, counterpart sample, deviation state
	TrackingStatus(ctx context.Context, rideID, userID string) (*models.TrackingStatus, error)

	// Latest published location of a ride participant (internal read API)
	LatestLocation(ctx context.Context, rideID, userID string) (*models.LocationRecord, error)

	// SOS activation
	ActivateSOS(ctx context.Context, req *models.SOSRequest) (*models.SOSActivation, error)
}
