package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/saferide/saferide/internal/pkg/logger"
	"github.com/saferide/saferide/internal/pkg/models"
)

const fallbackDisplayName = "A user"

// DispatchSOS composes the alert message and fans it out to every contact.
// Delivery is attempted for all contacts regardless of individual failures;
// a failed delivery is reflected in that contact's result only.
func (uc *NotificationUC) DispatchSOS(ctx context.Context, req *models.SOSNotificationRequest) (*models.SOSNotificationResponse, error) {
	userName, err := uc.profileRepo.GetDisplayName(ctx, req.UserID)
	if err != nil {
		logger.Warn("Failed to resolve user display name",
			logger.String("user_id", req.UserID),
			logger.ErrorField(err))
	}
	if userName == "" {
		userName = fallbackDisplayName
	}

	message := uc.composeAlertMessage(userName, uc.resolveLocation(ctx, req), time.Now())

	results := make([]models.NotificationResult, 0, len(req.Contacts))
	for _, contact := range req.Contacts {
		result := models.NotificationResult{
			ContactID:   contact.ID,
			ContactName: contact.Name,
		}

		if err := uc.smsProvider.SendSMS(ctx, contact.Phone, message); err != nil {
			logger.Error("Failed to send SOS SMS",
				logger.String("alert_id", req.AlertID),
				logger.String("contact_id", contact.ID),
				logger.ErrorField(err))
		} else {
			result.PhoneSent = true
		}

		if contact.Email != nil && *contact.Email != "" {
			if err := uc.emailProvider.SendEmail(ctx, *contact.Email, "SOS Emergency Alert", message); err != nil {
				logger.Error("Failed to send SOS email",
					logger.String("alert_id", req.AlertID),
					logger.String("contact_id", contact.ID),
					logger.ErrorField(err))
			} else {
				result.EmailSent = true
			}
		}

		results = append(results, result)
	}

	logger.Info("SOS notifications dispatched",
		logger.String("alert_id", req.AlertID),
		logger.String("user_id", req.UserID),
		logger.Int("contact_count", len(results)))

	return &models.SOSNotificationResponse{
		Success:           true,
		AlertID:           req.AlertID,
		NotificationsSent: len(results),
		Results:           results,
	}, nil
}

// resolveLocation prefers the freshest published ride location over the
// activation point, when a ride is known. A lookup failure is not fatal;
// the activation point was good enough to create the alert.
func (uc *NotificationUC) resolveLocation(ctx context.Context, req *models.SOSNotificationRequest) models.GeoLocation {
	if req.RideID == nil || *req.RideID == "" {
		return req.Location
	}

	record, err := uc.safetyClient.LatestRideLocation(ctx, *req.RideID, req.UserID)
	if err != nil || record == nil {
		logger.Warn("Using activation point for SOS alert",
			logger.String("alert_id", req.AlertID),
			logger.String("user_id", req.UserID),
			logger.ErrorField(err))
		return req.Location
	}

	return models.GeoLocation{Latitude: record.Latitude, Longitude: record.Longitude}
}

// composeAlertMessage builds the human-readable alert sent to every contact
func (uc *NotificationUC) composeAlertMessage(userName string, location models.GeoLocation, now time.Time) string {
	mapLink := fmt.Sprintf("%s?q=%s,%s",
		uc.cfg.Notification.MapLinkBase,
		strconv.FormatFloat(location.Latitude, 'f', -1, 64),
		strconv.FormatFloat(location.Longitude, 'f', -1, 64))

	return fmt.Sprintf(`EMERGENCY ALERT

%s has activated their SOS emergency alert!

Current Location:
%s

Time: %s

They may need immediate assistance. Please try to contact them or check on their safety.

This is an automated alert from the SafeRide safety system.`,
		userName, mapLink, now.Format(time.RFC1123))
}
