package usecase

import (
	"fmt"
	"sync"

	"github.com/saferide/saferide/internal/pkg/models"
	"github.com/saferide/saferide/services/safety"
)

// SafetyUC implements the safety.SafetyUC interface
type SafetyUC struct {
	cfg          *models.Config
	locationRepo safety.LocationRepo
	alertRepo    safety.AlertRepo
	contactRepo  safety.ContactRepo
	gw           safety.SafetyGW

	mu       sync.Mutex
	sessions map[string]*TrackingSession
}

// NewSafetyUC creates a new safety use case instance
func NewSafetyUC(
	cfg *models.Config,
	locationRepo safety.LocationRepo,
	alertRepo safety.AlertRepo,
	contactRepo safety.ContactRepo,
	gw safety.SafetyGW,
) *SafetyUC {
	return &SafetyUC{
		cfg:          cfg,
		locationRepo: locationRepo,
		alertRepo:    alertRepo,
		contactRepo:  contactRepo,
		gw:           gw,
		sessions:     make(map[string]*TrackingSession),
	}
}

func sessionKey(rideID, userID string) string {
	return fmt.Sprintf("%s:%s", rideID, userID)
}

// session returns the active tracking session for a (ride, user) pair, or nil
func (uc *SafetyUC) session(rideID, userID string) *TrackingSession {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.sessions[sessionKey(rideID, userID)]
}
