package safety

import "errors"

// Error taxonomy for the live safety subsystem. Leaf sensor and store
// errors are converted to these at component boundaries; raw transport
// errors never reach the HTTP layer.
var (
	// ErrSamplerUnsupported means the device has no position capability.
	// Terminal; there is no retry path.
	ErrSamplerUnsupported = errors.New("position sensor not supported")

	// ErrFixTimeout means no position fix arrived within the configured
	// acquisition window. Terminal per attempt; a fresh start restarts cleanly.
	ErrFixTimeout = errors.New("position fix timed out")

	// ErrSessionActive means a tracking session is already publishing for
	// this (ride, user) pair.
	ErrSessionActive = errors.New("tracking session already active")

	// ErrSessionNotFound means no tracking session exists for the pair.
	ErrSessionNotFound = errors.New("tracking session not found")

	// ErrLocationUnavailable means SOS activation had no current location
	// to attach. No side effects have occurred.
	ErrLocationUnavailable = errors.New("current location unavailable")

	// ErrNoContactsConfigured means the user has no emergency contacts.
	// The alert row created before the lookup remains in place.
	ErrNoContactsConfigured = errors.New("no emergency contacts configured")
)
