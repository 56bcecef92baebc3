package safety

import (
	"context"

	"github.com/saferide/saferide/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/saferide/saferide/services/safety SafetyGW

// SafetyGW is the outbound boundary of the safety service: the realtime
// location feed, user-facing notices and the notification fan-out call.
type SafetyGW interface {
	// PublishLocationRecord emits an insert event on the realtime feed for
	// the record's ride.
	PublishLocationRecord(ctx context.Context, record *models.LocationRecord) error

	// SubscribeRideLocations opens a subscription to the realtime feed
	// scoped to one ride. Events arrive in server-commit order; the returned
	// function tears the subscription down.
	SubscribeRideLocations(rideID string, fn func(*models.LocationRecord)) (func() error, error)

	// PublishUserNotice emits a one-shot user-facing notice
	PublishUserNotice(ctx context.Context, notice *models.UserNotice) error

	// SendSOSNotifications invokes the notification fan-out collaborator
	SendSOSNotifications(ctx context.Context, req *models.SOSNotificationRequest) (*models.SOSNotificationResponse, error)
}
