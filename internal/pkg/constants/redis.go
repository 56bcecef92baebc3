package constants

// Redis key formats
const (
	// Latest published location per ride participant
	KeyRideLocation = "ride:location:%s:%s" // Format: ride:location:{ride_id}:{user_id}

	// Geo set of both ride participants for distance lookups
	KeyRideGeo = "ride:geo:%s" // Format: ride:geo:{ride_id}
)

// Redis hash field names for location data
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldAccuracy  = "accuracy"
	FieldTimestamp = "timestamp"
	FieldUserType  = "user_type"
)
