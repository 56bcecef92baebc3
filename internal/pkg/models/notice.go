package models

import "time"

// UserNotice is a one-shot, user-facing notification published over NATS.
// The UI layer subscribes per user and renders these directly.
type UserNotice struct {
	UserID    string    `json:"user_id"`
	RideID    string    `json:"ride_id,omitempty"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Notice codes
const (
	NoticeRouteDeviation = "route_deviation"
	NoticeRouteRecovered = "route_recovered"
	NoticeSOSActivated   = "sos_activated"
	NoticeTrackingError  = "tracking_error"
)
