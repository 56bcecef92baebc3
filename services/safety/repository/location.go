package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/saferide/saferide/internal/pkg/constants"
	"github.com/saferide/saferide/internal/pkg/logger"
	"github.com/saferide/saferide/internal/pkg/models"
)

// AppendLocation inserts one row into the shared location log and refreshes
// the latest-location cache. The log is append-only: duplicate positions
// from a stationary device are written as new rows, never deduplicated.
func (r *locationRepo) AppendLocation(ctx context.Context, record *models.LocationRecord) error {
	query := `
		INSERT INTO ride_locations (
			id, ride_id, user_id, user_type, lat, lng,
			heading, speed, accuracy, geohash, recorded_at, created_at
		) VALUES (
			:id, :ride_id, :user_id, :user_type, :lat, :lng,
			:heading, :speed, :accuracy, :geohash, :recorded_at, :created_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("failed to insert location record: %w", err)
	}

	// The cache refresh is advisory; the log row is the durable record
	if err := r.cacheLatest(ctx, record); err != nil {
		logger.Warn("Failed to refresh latest-location cache",
			logger.String("ride_id", record.RideID),
			logger.String("user_id", record.UserID),
			logger.Err(err))
	}

	return nil
}

func (r *locationRepo) cacheLatest(ctx context.Context, record *models.LocationRecord) error {
	if r.redisClient == nil {
		return nil
	}

	locationKey := fmt.Sprintf(constants.KeyRideLocation, record.RideID, record.UserID)
	locationData := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(record.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(record.Longitude, 'f', -1, 64),
		constants.FieldAccuracy:  strconv.FormatFloat(record.Accuracy, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(record.RecordedAt.Unix(), 10),
		constants.FieldUserType:  string(record.UserType),
	}

	if err := r.redisClient.HMSet(ctx, locationKey, locationData); err != nil {
		return fmt.Errorf("failed to store latest location: %w", err)
	}

	ttl := time.Duration(r.cfg.Tracking.LocationTTLHours) * time.Hour
	if err := r.redisClient.Expire(ctx, locationKey, ttl); err != nil {
		return fmt.Errorf("failed to set location TTL: %w", err)
	}

	geoKey := fmt.Sprintf(constants.KeyRideGeo, record.RideID)
	if err := r.redisClient.GeoAdd(ctx, geoKey, record.Longitude, record.Latitude, record.UserID); err != nil {
		return fmt.Errorf("failed to add ride geo entry: %w", err)
	}

	return nil
}

// maxGeoRadiusKm spans the whole geo set; any cached participant matches.
const maxGeoRadiusKm = 21000

// CounterpartDistance reads the ride geo set and returns the other
// participant's cached position with its distance in kilometers from the
// given point.
func (r *locationRepo) CounterpartDistance(ctx context.Context, rideID, userID string, from models.GeoLocation) (*models.LocationRecord, float64, error) {
	if r.redisClient == nil {
		return nil, 0, fmt.Errorf("latest-location cache not configured")
	}

	geoKey := fmt.Sprintf(constants.KeyRideGeo, rideID)
	members, err := r.redisClient.GeoRadius(ctx, geoKey, from.Longitude, from.Latitude, maxGeoRadiusKm, "km")
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query ride geo set: %w", err)
	}

	for _, member := range members {
		if member.Name == userID {
			continue
		}
		record := &models.LocationRecord{
			RideID: rideID,
			UserID: member.Name,
			PositionSample: models.PositionSample{
				Latitude:  member.Latitude,
				Longitude: member.Longitude,
			},
		}
		return record, member.Dist, nil
	}

	return nil, 0, fmt.Errorf("no counterpart location for ride %s", rideID)
}

// GetLatestLocation returns the most recently cached location for a ride
// participant.
func (r *locationRepo) GetLatestLocation(ctx context.Context, rideID, userID string) (*models.LocationRecord, error) {
	if r.redisClient == nil {
		return nil, fmt.Errorf("latest-location cache not configured")
	}

	locationKey := fmt.Sprintf(constants.KeyRideLocation, rideID, userID)
	fields := []string{
		constants.FieldLatitude,
		constants.FieldLongitude,
		constants.FieldAccuracy,
		constants.FieldTimestamp,
		constants.FieldUserType,
	}

	values, err := r.redisClient.HMGet(ctx, locationKey, fields...)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest location: %w", err)
	}

	hasValue := false
	for _, v := range values {
		if v != "" {
			hasValue = true
			break
		}
	}
	if !hasValue || len(values) != len(fields) {
		return nil, fmt.Errorf("no location data found for ride %s user %s", rideID, userID)
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}
	accuracy, err := strconv.ParseFloat(values[2], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid accuracy: %w", err)
	}
	ts, err := strconv.ParseInt(values[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	return &models.LocationRecord{
		RideID:   rideID,
		UserID:   userID,
		UserType: models.UserType(values[4]),
		PositionSample: models.PositionSample{
			Latitude:   lat,
			Longitude:  lng,
			Accuracy:   accuracy,
			RecordedAt: time.Unix(ts, 0),
		},
	}, nil
}
