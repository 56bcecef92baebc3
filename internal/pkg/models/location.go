package models

import (
	"time"

	"github.com/google/uuid"
)

// UserType identifies which side of a ride emitted a location
type UserType string

const (
	UserTypePassenger UserType = "passenger"
	UserTypeDriver    UserType = "driver"
)

// GeoLocation represents a geographic location
type GeoLocation struct {
	Latitude  float64 `json:"lat" db:"lat"`
	Longitude float64 `json:"lng" db:"lng"`
}

// PositionSample is a single sensor-reported position fix.
// Heading and speed are nullable because a stationary device may not report them.
type PositionSample struct {
	Latitude   float64   `json:"lat" db:"lat"`
	Longitude  float64   `json:"lng" db:"lng"`
	Heading    *float64  `json:"heading" db:"heading"`
	Speed      *float64  `json:"speed" db:"speed"`
	Accuracy   float64   `json:"accuracy" db:"accuracy"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
}

// LocationRecord is a persisted position sample tagged with its ride and emitter.
// Rows are append-only; this subsystem never updates or deletes them.
type LocationRecord struct {
	ID             uuid.UUID `json:"id" db:"id"`
	RideID         string    `json:"ride_id" db:"ride_id"`
	UserID         string    `json:"user_id" db:"user_id"`
	UserType       UserType  `json:"user_type" db:"user_type"`
	PositionSample
	Geohash   string    `json:"geohash" db:"geohash"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// StartTrackingRequest opens a tracking session for one ride participant
type StartTrackingRequest struct {
	RideID   string        `json:"ride_id"`
	UserID   string        `json:"user_id"`
	UserType UserType      `json:"user_type"`
	Route    []GeoLocation `json:"route"`
}

// IngestPositionRequest carries one device fix pushed over the ingest API
type IngestPositionRequest struct {
	UserID string `json:"user_id"`
	PositionSample
}

// TrackingStatus is the current view of a tracking session
type TrackingStatus struct {
	RideID      string          `json:"ride_id"`
	UserID      string          `json:"user_id"`
	Tracking    bool            `json:"tracking"`
	LastError   string          `json:"last_error,omitempty"`
	Self        *PositionSample `json:"self,omitempty"`
	Counterpart *LocationRecord `json:"counterpart,omitempty"`
	DistanceKm  *float64        `json:"distance_km,omitempty"`
	Deviating   bool            `json:"deviating"`
}
