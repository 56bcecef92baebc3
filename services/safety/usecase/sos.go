package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/saferide/saferide/internal/pkg/logger"
	"github.com/saferide/saferide/internal/pkg/models"
	"github.com/saferide/saferide/services/safety"
)

const sosActivatedMsg = "SOS activated. Your emergency contacts are being notified with your location."

// ActivateSOS runs the emergency dispatch flow:
//
//  1. require a user and a current location, otherwise fail with no side
//     effects;
//  2. persist the alert row, which must succeed for the activation to count;
//  3. load the prioritized contact list, failing with a distinct error when
//     none are configured (the alert row is deliberately left in place);
//  4. invoke the notification fan-out, whose failure is logged but does not
//     fail the activation, the alert record being the source of truth;
//  5. confirm to the caller.
//
// Activation is not idempotent: invoking it again creates a second alert
// and a second fan-out.
func (uc *SafetyUC) ActivateSOS(ctx context.Context, req *models.SOSRequest) (*models.SOSActivation, error) {
	if req == nil || req.UserID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	location := req.Location
	if location == nil && req.RideID != nil {
		if session := uc.session(*req.RideID, req.UserID); session != nil {
			location = session.LastSample()
		}
	}
	if location == nil {
		return nil, safety.ErrLocationUnavailable
	}

	alert := &models.SOSAlert{
		ID:        uuid.New(),
		UserID:    req.UserID,
		RideID:    req.RideID,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		Status:    models.SOSStatusActive,
		CreatedAt: time.Now(),
	}
	if err := uc.alertRepo.CreateAlert(ctx, alert); err != nil {
		return nil, fmt.Errorf("failed to create sos alert: %w", err)
	}

	contacts, err := uc.contactRepo.ListByUser(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load emergency contacts: %w", err)
	}
	if len(contacts) == 0 {
		// The alert row stays active with nobody notified; resolution is
		// handled outside this subsystem. See DESIGN.md.
		return nil, safety.ErrNoContactsConfigured
	}

	fanout := &models.SOSNotificationRequest{
		AlertID: alert.ID.String(),
		UserID:  req.UserID,
		RideID:  alert.RideID,
		Location: models.GeoLocation{
			Latitude:  location.Latitude,
			Longitude: location.Longitude,
		},
		Contacts: contacts,
	}

	response, err := uc.gw.SendSOSNotifications(ctx, fanout)
	if err != nil {
		// Delivery is advisory: the alert row already records the emergency
		logger.Error("Failed to dispatch sos notifications",
			logger.String("alert_id", alert.ID.String()),
			logger.String("user_id", req.UserID),
			logger.Err(err))
		response = nil
	}

	rideID := ""
	if req.RideID != nil {
		rideID = *req.RideID
	}
	notice := &models.UserNotice{
		UserID:    req.UserID,
		RideID:    rideID,
		Code:      models.NoticeSOSActivated,
		Message:   sosActivatedMsg,
		CreatedAt: time.Now(),
	}
	if err := uc.gw.PublishUserNotice(ctx, notice); err != nil {
		logger.Warn("Failed to publish sos confirmation notice",
			logger.String("user_id", req.UserID),
			logger.Err(err))
	}

	return &models.SOSActivation{
		Alert:         alert,
		Notifications: response,
	}, nil
}
