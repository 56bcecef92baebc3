package models

import (
	"time"

	"github.com/google/uuid"
)

// SOSStatus represents the lifecycle state of an SOS alert
type SOSStatus string

const (
	SOSStatusActive   SOSStatus = "active"
	SOSStatusResolved SOSStatus = "resolved"
)

// SOSAlert is a persisted emergency alert. Resolution is handled outside
// this subsystem; we only ever create alerts in the active state.
type SOSAlert struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	UserID     string     `json:"user_id" db:"user_id"`
	RideID     *string    `json:"ride_id" db:"ride_id"`
	Latitude   float64    `json:"lat" db:"lat"`
	Longitude  float64    `json:"lng" db:"lng"`
	Status     SOSStatus  `json:"status" db:"status"`
	Notes      *string    `json:"notes" db:"notes"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at" db:"resolved_at"`
}

// EmergencyContact is a user's emergency contact, ordered by priority
// ascending (lower value = notified first). Managed elsewhere; read-only here.
type EmergencyContact struct {
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"user_id" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	Phone        string    `json:"phone" db:"phone"`
	Email        *string   `json:"email" db:"email"`
	Relationship *string   `json:"relationship" db:"relationship"`
	Priority     int       `json:"priority" db:"priority"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// SOSRequest triggers SOS activation for a user.
// Location is optional; when omitted the dispatcher falls back to the
// user's active tracking session.
type SOSRequest struct {
	UserID   string          `json:"user_id"`
	RideID   *string         `json:"ride_id"`
	Location *PositionSample `json:"location"`
}

// SOSActivation is the outcome reported to the caller of an SOS activation
type SOSActivation struct {
	Alert         *SOSAlert                `json:"alert"`
	Notifications *SOSNotificationResponse `json:"notifications,omitempty"`
}

// SOSNotificationRequest is the payload handed to the notification fan-out.
// RideID, when set, lets the fan-out service look up a fresher location than
// the activation point.
type SOSNotificationRequest struct {
	AlertID  string              `json:"alert_id"`
	UserID   string              `json:"user_id"`
	RideID   *string             `json:"ride_id,omitempty"`
	Location GeoLocation         `json:"location"`
	Contacts []*EmergencyContact `json:"contacts"`
}

// NotificationResult is the per-contact delivery outcome of one fan-out
type NotificationResult struct {
	ContactID   string `json:"contact_id"`
	ContactName string `json:"contact_name"`
	PhoneSent   bool   `json:"phone_sent"`
	EmailSent   bool   `json:"email_sent"`
}

// SOSNotificationResponse reports the fan-out outcome. A contact-level
// delivery failure never fails the batch; it is reflected in Results only.
type SOSNotificationResponse struct {
	Success           bool                 `json:"success"`
	AlertID           string               `json:"alert_id"`
	NotificationsSent int                  `json:"notifications_sent"`
	Results           []NotificationResult `json:"results"`
}
