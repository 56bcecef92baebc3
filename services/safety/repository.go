package safety

import (
	"context"

	"github.com/saferide/saferide/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/saferide/saferide/services/safety LocationRepo,AlertRepo,ContactRepo

// LocationRepo persists the append-only location log and the
// latest-location cache.
type LocationRepo interface {
	// AppendLocation inserts one row into the shared location store and
	// refreshes the latest-location cache. Rows are never updated or deleted.
	AppendLocation(ctx context.Context, record *models.LocationRecord) error

	// GetLatestLocation returns the most recently cached location for a
	// ride participant.
	GetLatestLocation(ctx context.Context, rideID, userID string) (*models.LocationRecord, error)

	// CounterpartDistance returns the other ride participant's cached
	// position and its distance in kilometers from the given point.
	CounterpartDistance(ctx context.Context, rideID, userID string, from models.GeoLocation) (*models.LocationRecord, float64, error)
}

// AlertRepo persists SOS alerts
type AlertRepo interface {
	CreateAlert(ctx context.Context, alert *models.SOSAlert) error
}

// ContactRepo reads emergency contacts. Contact lifecycle is owned by the
// contacts CRUD feature; this subsystem only lists them.
type ContactRepo interface {
	// ListByUser returns the user's contacts ordered by priority ascending,
	// ties broken by insertion order.
	ListByUser(ctx context.Context, userID string) ([]*models.EmergencyContact, error)
}
