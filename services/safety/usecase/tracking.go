package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/saferide/saferide/internal/pkg/logger"
	"github.com/saferide/saferide/internal/pkg/models"
	"github.com/saferide/saferide/internal/utils"
	"github.com/saferide/saferide/services/safety"
)

// User-facing notice texts
const (
	deviationWarningMsg = "We noticed you are on a different route than planned. Everything okay? Help is one tap away."
	routeRecoveredMsg   = "Back on the planned route."
	trackingErrorMsg    = "We cannot access your location right now. Live tracking has stopped."
)

// TrackingSession owns the live tracking resources of one (ride, user)
// pair: the position watch, the periodic publisher and the counterpart feed
// subscription. The three are independent and each is released on stop even
// if another release fails.
type TrackingSession struct {
	rideID   string
	userID   string
	userType models.UserType

	provider    *PushProvider
	sampler     *Sampler
	monitor     *DeviationMonitor
	counterpart *CounterpartSync

	locationRepo safety.LocationRepo
	gw           safety.SafetyGW
	interval     time.Duration

	stopSampler func()
	cancel      context.CancelFunc
	done        chan struct{}

	mu      sync.RWMutex
	last    *models.PositionSample
	lastErr error
}

// StartTracking opens a tracking session for one ride participant. At most
// one session publishes per (ride, user) pair; a second start fails with
// ErrSessionActive.
func (uc *SafetyUC) StartTracking(ctx context.Context, req *models.StartTrackingRequest) error {
	if req == nil || req.RideID == "" || req.UserID == "" {
		return fmt.Errorf("ride id and user id are required")
	}
	if req.UserType != models.UserTypePassenger && req.UserType != models.UserTypeDriver {
		return fmt.Errorf("invalid user type: %s", req.UserType)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	key := sessionKey(req.RideID, req.UserID)
	if _, exists := uc.sessions[key]; exists {
		return safety.ErrSessionActive
	}

	provider := NewPushProvider()
	sampler := NewSampler(provider, DefaultWatchOptions(uc.cfg.Tracking))
	monitor := NewDeviationMonitor(req.Route, uc.cfg.Tracking.DeviationThresholdKm)

	counterpart, err := NewCounterpartSync(req.RideID, req.UserID, uc.gw)
	if err != nil {
		return err
	}

	stopSampler, err := sampler.StartTracking()
	if err != nil {
		if closeErr := counterpart.Close(); closeErr != nil {
			logger.Warn("Failed to close counterpart subscription",
				logger.String("ride_id", req.RideID),
				logger.Err(closeErr))
		}
		return err
	}

	sessionCtx, cancel := context.WithCancel(context.Background())
	session := &TrackingSession{
		rideID:       req.RideID,
		userID:       req.UserID,
		userType:     req.UserType,
		provider:     provider,
		sampler:      sampler,
		monitor:      monitor,
		counterpart:  counterpart,
		locationRepo: uc.locationRepo,
		gw:           uc.gw,
		interval:     time.Duration(uc.cfg.Tracking.PublishIntervalMs) * time.Millisecond,
		stopSampler:  stopSampler,
		cancel:       cancel,
		done:         make(chan struct{}),
	}

	go session.run(sessionCtx)
	uc.sessions[key] = session

	logger.Info("Tracking session started",
		logger.String("ride_id", req.RideID),
		logger.String("user_id", req.UserID),
		logger.String("user_type", string(req.UserType)))

	return nil
}

// StopTracking ends the session for a (ride, user) pair and releases its
// resources.
func (uc *SafetyUC) StopTracking(ctx context.Context, rideID, userID string) error {
	uc.mu.Lock()
	key := sessionKey(rideID, userID)
	session, exists := uc.sessions[key]
	if !exists {
		uc.mu.Unlock()
		return safety.ErrSessionNotFound
	}
	delete(uc.sessions, key)
	uc.mu.Unlock()

	return session.Stop()
}

// IngestPosition feeds a device fix into the session's position watch
func (uc *SafetyUC) IngestPosition(ctx context.Context, rideID, userID string, sample models.PositionSample) error {
	session := uc.session(rideID, userID)
	if session == nil {
		return safety.ErrSessionNotFound
	}

	if !utils.ValidateCoordinates(sample.Latitude, sample.Longitude) {
		return fmt.Errorf("invalid coordinates: %f, %f", sample.Latitude, sample.Longitude)
	}
	if sample.RecordedAt.IsZero() {
		sample.RecordedAt = time.Now()
	}

	return session.provider.Offer(sample)
}

// TrackingStatus returns the current view of a session
func (uc *SafetyUC) TrackingStatus(ctx context.Context, rideID, userID string) (*models.TrackingStatus, error) {
	session := uc.session(rideID, userID)
	if session == nil {
		return nil, safety.ErrSessionNotFound
	}

	status := &models.TrackingStatus{
		RideID:    rideID,
		UserID:    userID,
		Tracking:  session.sampler.Tracking(),
		Deviating: session.monitor.Deviating(),
	}

	session.mu.RLock()
	status.Self = session.last
	if session.lastErr != nil {
		status.LastError = session.lastErr.Error()
	}
	session.mu.RUnlock()

	status.Counterpart = session.counterpart.Counterpart()
	if status.Self != nil && status.Counterpart != nil {
		distance := utils.CalculateDistance(
			models.GeoLocation{Latitude: status.Self.Latitude, Longitude: status.Self.Longitude},
			models.GeoLocation{Latitude: status.Counterpart.Latitude, Longitude: status.Counterpart.Longitude},
		)
		status.DistanceKm = &distance
	} else if status.Self != nil {
		// The feed has not delivered a counterpart event yet; fall back to
		// the ride geo set, which holds whatever the counterpart last
		// published before this session subscribed.
		self := models.GeoLocation{Latitude: status.Self.Latitude, Longitude: status.Self.Longitude}
		record, distance, err := uc.locationRepo.CounterpartDistance(ctx, rideID, userID, self)
		if err == nil && record != nil {
			status.Counterpart = record
			status.DistanceKm = &distance
		}
	}

	return status, nil
}

// LatestLocation returns the most recently published location of a ride
// participant from the latest-location cache.
func (uc *SafetyUC) LatestLocation(ctx context.Context, rideID, userID string) (*models.LocationRecord, error) {
	return uc.locationRepo.GetLatestLocation(ctx, rideID, userID)
}

// run is the session's publish loop: the first fix is mirrored to shared
// storage immediately, afterwards the latest known sample is mirrored once
// per interval. Every fresh fix also feeds the deviation monitor.
func (s *TrackingSession) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	published := false

	for {
		select {
		case <-ctx.Done():
			return

		case sample := <-s.sampler.Samples():
			s.mu.Lock()
			s.last = &sample
			s.mu.Unlock()

			if !published {
				published = true
				s.publish(ctx, &sample)
			}
			s.observe(ctx, sample)

		case err := <-s.sampler.Errs():
			s.mu.Lock()
			s.lastErr = err
			s.mu.Unlock()

			logger.Warn("Position tracking stopped",
				logger.String("ride_id", s.rideID),
				logger.String("user_id", s.userID),
				logger.Err(err))
			s.notify(ctx, models.NoticeTrackingError, trackingErrorMsg)

		case <-ticker.C:
			s.mu.RLock()
			last := s.last
			s.mu.RUnlock()
			if last == nil {
				continue
			}
			s.publish(ctx, last)
		}
	}
}

// publish mirrors one sample to the shared location store and the realtime
// feed. A failed publish is logged and swallowed; the next tick retries on
// its own, there is no backoff and no queue of failed writes.
func (s *TrackingSession) publish(ctx context.Context, sample *models.PositionSample) {
	record := &models.LocationRecord{
		ID:             uuid.New(),
		RideID:         s.rideID,
		UserID:         s.userID,
		UserType:       s.userType,
		PositionSample: *sample,
		Geohash: utils.EncodeLocation(models.GeoLocation{
			Latitude:  sample.Latitude,
			Longitude: sample.Longitude,
		}, utils.GeohashPrecision),
		CreatedAt: time.Now(),
	}

	if err := s.locationRepo.AppendLocation(ctx, record); err != nil {
		logger.Warn("Failed to publish location",
			logger.String("ride_id", s.rideID),
			logger.String("user_id", s.userID),
			logger.Err(err))
		return
	}

	if err := s.gw.PublishLocationRecord(ctx, record); err != nil {
		logger.Warn("Failed to emit location feed event",
			logger.String("ride_id", s.rideID),
			logger.Err(err))
	}
}

// observe feeds one fresh fix into the deviation monitor and turns edge
// transitions into one-shot notices.
func (s *TrackingSession) observe(ctx context.Context, sample models.PositionSample) {
	point := models.GeoLocation{Latitude: sample.Latitude, Longitude: sample.Longitude}

	switch s.monitor.Observe(point) {
	case DeviationEntered:
		logger.Info("Route deviation detected",
			logger.String("ride_id", s.rideID),
			logger.String("user_id", s.userID))
		s.notify(ctx, models.NoticeRouteDeviation, deviationWarningMsg)
	case DeviationCleared:
		logger.Info("Route deviation cleared",
			logger.String("ride_id", s.rideID),
			logger.String("user_id", s.userID))
		s.notify(ctx, models.NoticeRouteRecovered, routeRecoveredMsg)
	}
}

func (s *TrackingSession) notify(ctx context.Context, code, message string) {
	notice := &models.UserNotice{
		UserID:    s.userID,
		RideID:    s.rideID,
		Code:      code,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := s.gw.PublishUserNotice(ctx, notice); err != nil {
		logger.Warn("Failed to publish user notice",
			logger.String("user_id", s.userID),
			logger.String("code", code),
			logger.Err(err))
	}
}

// LastSample returns the most recent fix seen by this session, or nil
func (s *TrackingSession) LastSample() *models.PositionSample {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// Stop releases the position watch, the publish loop and the feed
// subscription. All three are released even if one release fails.
func (s *TrackingSession) Stop() error {
	s.stopSampler()
	s.cancel()
	<-s.done

	if err := s.counterpart.Close(); err != nil {
		return err
	}

	logger.Info("Tracking session stopped",
		logger.String("ride_id", s.rideID),
		logger.String("user_id", s.userID))
	return nil
}
