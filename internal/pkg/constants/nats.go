package constants

// NATS Subjects
const (
	// Realtime location feed, one subject per ride so subscribers only
	// receive events for their own session
	SubjectRideLocation = "ride.location.%s" // Format: ride.location.{ride_id}

	// One-shot user-facing notices (deviation warnings, SOS confirmations)
	SubjectUserNotice = "user.notice.%s" // Format: user.notice.{user_id}
)
