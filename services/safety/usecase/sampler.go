package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/saferide/saferide/internal/pkg/models"
	"github.com/saferide/saferide/services/safety"
)

// WatchOptions configures continuous position acquisition
type WatchOptions struct {
	HighAccuracy bool
	Timeout      time.Duration // max wait for the next fix before the watch errors
	MaximumAge   time.Duration // 0 means a cached fix is never served
}

// DefaultWatchOptions returns the watch configuration used for live
// tracking: always a fresh, high-accuracy fix.
func DefaultWatchOptions(cfg models.TrackingConfig) WatchOptions {
	return WatchOptions{
		HighAccuracy: true,
		Timeout:      time.Duration(cfg.FixTimeoutMs) * time.Millisecond,
		MaximumAge:   0,
	}
}

// PositionProvider abstracts the device's continuous position API
type PositionProvider interface {
	// Supported reports whether the device has position capability
	Supported() bool

	// Watch begins continuous acquisition. Fixes and watch-level errors are
	// delivered on the returned channels until ctx is cancelled.
	Watch(ctx context.Context, opts WatchOptions) (<-chan models.PositionSample, <-chan error, error)
}

// Sampler wraps a PositionProvider with the tracking configuration and the
// error taxonomy. Exactly one acquisition watch is active per sampler at a
// time; a watch error is terminal until StartTracking is invoked again.
type Sampler struct {
	provider PositionProvider
	opts     WatchOptions

	mu       sync.Mutex
	tracking bool
	cancel   context.CancelFunc
	lastErr  error

	samples chan models.PositionSample
	errs    chan error
}

// NewSampler creates a sampler over the given provider
func NewSampler(provider PositionProvider, opts WatchOptions) *Sampler {
	return &Sampler{
		provider: provider,
		opts:     opts,
		samples:  make(chan models.PositionSample, 1),
		errs:     make(chan error, 1),
	}
}

// Samples delivers position fixes. Only the latest undelivered sample is
// retained; a newer fix supersedes one that was never consumed.
func (s *Sampler) Samples() <-chan models.PositionSample {
	return s.samples
}

// Errs delivers the terminal watch error, if any
func (s *Sampler) Errs() <-chan error {
	return s.errs
}

// Tracking reports whether acquisition is currently active
func (s *Sampler) Tracking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracking
}

// LastError returns the error that stopped the last watch, if any
func (s *Sampler) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// StartTracking begins continuous position acquisition and returns a stop
// function. Starting without sensor capability fails immediately and leaves
// tracking inactive.
func (s *Sampler) StartTracking() (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.provider.Supported() {
		return nil, safety.ErrSamplerUnsupported
	}
	if s.tracking {
		return nil, fmt.Errorf("sampler is already tracking")
	}

	ctx, cancel := context.WithCancel(context.Background())
	fixes, watchErrs, err := s.provider.Watch(ctx, s.opts)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start position watch: %w", err)
	}

	s.tracking = true
	s.lastErr = nil
	s.cancel = cancel

	go s.watch(ctx, fixes, watchErrs)

	return s.stop, nil
}

func (s *Sampler) watch(ctx context.Context, fixes <-chan models.PositionSample, watchErrs <-chan error) {
	var timer *time.Timer
	if s.opts.Timeout > 0 {
		timer = time.NewTimer(s.opts.Timeout)
	} else {
		timer = time.NewTimer(time.Hour)
		timer.Stop()
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case fix, ok := <-fixes:
			if !ok {
				return
			}
			if s.opts.Timeout > 0 {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(s.opts.Timeout)
			}
			s.offer(fix)

		case err, ok := <-watchErrs:
			if !ok {
				return
			}
			s.fail(fmt.Errorf("position watch failed: %w", err))
			return

		case <-timer.C:
			s.fail(safety.ErrFixTimeout)
			return
		}
	}
}

// offer replaces any undelivered sample with the newer one
func (s *Sampler) offer(fix models.PositionSample) {
	for {
		select {
		case s.samples <- fix:
			return
		default:
			select {
			case <-s.samples:
			default:
			}
		}
	}
}

// fail records a terminal error, cancels the watch and surfaces the error
func (s *Sampler) fail(err error) {
	s.mu.Lock()
	s.tracking = false
	s.lastErr = err
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	select {
	case s.errs <- err:
	default:
	}
}

// stop cancels the watch without recording an error
func (s *Sampler) stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.tracking = false
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// PushProvider is a PositionProvider fed by fixes pushed from the device
// over the ingest API. It never caches, so a zero maximum age is honored
// trivially: every delivered fix is a fresh one.
type PushProvider struct {
	mu       sync.Mutex
	watching bool
	fixes    chan models.PositionSample
	errs     chan error
}

// NewPushProvider creates a push-fed position provider
func NewPushProvider() *PushProvider {
	return &PushProvider{}
}

// Supported always reports true; the device pushing fixes is the capability
func (p *PushProvider) Supported() bool {
	return true
}

// Watch begins accepting pushed fixes until ctx is cancelled
func (p *PushProvider) Watch(ctx context.Context, opts WatchOptions) (<-chan models.PositionSample, <-chan error, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.watching {
		return nil, nil, fmt.Errorf("position watch already active")
	}

	fixes := make(chan models.PositionSample, 8)
	errs := make(chan error, 1)
	p.watching = true
	p.fixes = fixes
	p.errs = errs

	go func() {
		<-ctx.Done()
		p.mu.Lock()
		p.watching = false
		p.fixes = nil
		p.errs = nil
		p.mu.Unlock()
	}()

	return fixes, errs, nil
}

// Offer delivers a device fix to the active watch
func (p *PushProvider) Offer(sample models.PositionSample) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.watching || p.fixes == nil {
		return fmt.Errorf("no active position watch")
	}

	for {
		select {
		case p.fixes <- sample:
			return nil
		default:
			// Drop the oldest buffered fix; the latest one wins
			select {
			case <-p.fixes:
			default:
			}
		}
	}
}

// Fail surfaces a device-level acquisition error (permission revoked,
// sensor failure) to the active watch.
func (p *PushProvider) Fail(err error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.watching || p.errs == nil {
		return fmt.Errorf("no active position watch")
	}

	select {
	case p.errs <- err:
	default:
	}
	return nil
}
