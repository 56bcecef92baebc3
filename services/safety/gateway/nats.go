package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
	"github.com/saferide/saferide/internal/pkg/constants"
	"github.com/saferide/saferide/internal/pkg/logger"
	"github.com/saferide/saferide/internal/pkg/models"
)

// PublishLocationRecord emits an insert event on the per-ride location subject
func (g *safetyGW) PublishLocationRecord(ctx context.Context, record *models.LocationRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal location record: %w", err)
	}

	subject := fmt.Sprintf(constants.SubjectRideLocation, record.RideID)
	if err := g.natsClient.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish location record: %w", err)
	}

	return nil
}

// SubscribeRideLocations subscribes to the per-ride location subject and
// invokes fn for every insert event. Events that fail to decode are dropped
// with a warning rather than tearing down the subscription.
func (g *safetyGW) SubscribeRideLocations(rideID string, fn func(*models.LocationRecord)) (func() error, error) {
	subject := fmt.Sprintf(constants.SubjectRideLocation, rideID)

	sub, err := g.natsClient.Subscribe(subject, func(msg *nats.Msg) {
		var record models.LocationRecord
		if err := json.Unmarshal(msg.Data, &record); err != nil {
			logger.Warn("Dropping malformed location event",
				logger.String("subject", subject),
				logger.Err(err))
			return
		}
		fn(&record)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to ride locations: %w", err)
	}

	return sub.Unsubscribe, nil
}

// PublishUserNotice emits a one-shot notice on the user's notice subject
func (g *safetyGW) PublishUserNotice(ctx context.Context, notice *models.UserNotice) error {
	data, err := json.Marshal(notice)
	if err != nil {
		return fmt.Errorf("failed to marshal user notice: %w", err)
	}

	subject := fmt.Sprintf(constants.SubjectUserNotice, notice.UserID)
	if err := g.natsClient.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish user notice: %w", err)
	}

	return nil
}
