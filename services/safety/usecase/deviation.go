package usecase

import (
	"sync"

	"github.com/saferide/saferide/internal/pkg/models"
	"github.com/saferide/saferide/internal/utils"
)

// DeviationEvent is the outcome of observing one position sample
type DeviationEvent int

const (
	// DeviationNone means the observation caused no state transition
	DeviationNone DeviationEvent = iota
	// DeviationEntered fires once on the on-route to deviated edge
	DeviationEntered
	// DeviationCleared fires once on the deviated to on-route edge
	DeviationCleared
)

// DeviationMonitor tracks whether a ride participant has left the planned
// route. Transitions are edge-triggered: entering or leaving the deviated
// state yields exactly one event, repeated samples on the same side of the
// threshold yield none. There is no hysteresis band beyond the single
// threshold, so oscillation right at the boundary flips state per sample.
type DeviationMonitor struct {
	route       []models.GeoLocation
	thresholdKm float64

	mu       sync.Mutex
	deviated bool
}

// NewDeviationMonitor creates a monitor for the given planned route. An
// empty route leaves the monitor permanently idle.
func NewDeviationMonitor(route []models.GeoLocation, thresholdKm float64) *DeviationMonitor {
	return &DeviationMonitor{
		route:       route,
		thresholdKm: thresholdKm,
	}
}

// Observe feeds one self position into the monitor and returns the state
// transition it caused, if any. The threshold comparison is strictly
// greater-than: a sample exactly at the threshold counts as on-route.
func (m *DeviationMonitor) Observe(point models.GeoLocation) DeviationEvent {
	minDistance, ok := utils.MinDistanceToRoute(point, m.route)
	if !ok {
		return DeviationNone
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if minDistance > m.thresholdKm {
		if !m.deviated {
			m.deviated = true
			return DeviationEntered
		}
		return DeviationNone
	}

	if m.deviated {
		m.deviated = false
		return DeviationCleared
	}
	return DeviationNone
}

// Deviating reports the current deviation state
func (m *DeviationMonitor) Deviating() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.deviated
}
