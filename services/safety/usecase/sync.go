package usecase

import (
	"fmt"
	"sync"

	"github.com/saferide/saferide/internal/pkg/models"
	"github.com/saferide/saferide/services/safety"
)

// CounterpartSync mirrors the other ride participant's published location.
// It subscribes to the realtime feed for one ride, discards self-originated
// events and retains only the most recent counterpart record: last-write-wins
// in event arrival order, which is commit order rather than sample order. An
// out-of-order delivery can briefly regress the displayed position; that is
// an accepted tradeoff, no reorder buffer is applied.
type CounterpartSync struct {
	rideID     string
	selfUserID string

	mu    sync.RWMutex
	other *models.LocationRecord

	unsubscribe func() error
}

// NewCounterpartSync opens the feed subscription for a ride
func NewCounterpartSync(rideID, selfUserID string, gw safety.SafetyGW) (*CounterpartSync, error) {
	cs := &CounterpartSync{
		rideID:     rideID,
		selfUserID: selfUserID,
	}

	unsubscribe, err := gw.SubscribeRideLocations(rideID, cs.apply)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to ride locations: %w", err)
	}
	cs.unsubscribe = unsubscribe

	return cs, nil
}

// apply handles one feed event. Events carrying the local user's id are the
// session's own writes echoed back and are discarded.
func (cs *CounterpartSync) apply(record *models.LocationRecord) {
	if record == nil || record.UserID == cs.selfUserID {
		return
	}

	cs.mu.Lock()
	cs.other = record
	cs.mu.Unlock()
}

// Counterpart returns the latest known counterpart location, or nil
func (cs *CounterpartSync) Counterpart() *models.LocationRecord {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.other
}

// Close tears the feed subscription down. Safe to call more than once.
func (cs *CounterpartSync) Close() error {
	cs.mu.Lock()
	unsubscribe := cs.unsubscribe
	cs.unsubscribe = nil
	cs.mu.Unlock()

	if unsubscribe == nil {
		return nil
	}
	if err := unsubscribe(); err != nil {
		return fmt.Errorf("failed to close ride location subscription: %w", err)
	}
	return nil
}
