package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/saferide/saferide/internal/pkg/models"
	"github.com/saferide/saferide/services/safety"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsupportedProvider simulates a device with no position capability
type unsupportedProvider struct{}

func (p *unsupportedProvider) Supported() bool { return false }

func (p *unsupportedProvider) Watch(ctx context.Context, opts WatchOptions) (<-chan models.PositionSample, <-chan error, error) {
	return nil, nil, errors.New("unreachable")
}

func TestSampler_UnsupportedDevice(t *testing.T) {
	s := NewSampler(&unsupportedProvider{}, WatchOptions{HighAccuracy: true})

	stop, err := s.StartTracking()
	assert.Nil(t, stop)
	assert.ErrorIs(t, err, safety.ErrSamplerUnsupported)
	assert.False(t, s.Tracking())
}

func TestSampler_ForwardsFixes(t *testing.T) {
	provider := NewPushProvider()
	s := NewSampler(provider, WatchOptions{HighAccuracy: true, Timeout: time.Second})

	stop, err := s.StartTracking()
	require.NoError(t, err)
	defer stop()

	assert.True(t, s.Tracking())

	sample := models.PositionSample{Latitude: -6.175392, Longitude: 106.827153, Accuracy: 5, RecordedAt: time.Now()}
	require.NoError(t, provider.Offer(sample))

	select {
	case got := <-s.Samples():
		assert.Equal(t, sample.Latitude, got.Latitude)
		assert.Equal(t, sample.Longitude, got.Longitude)
	case <-time.After(time.Second):
		t.Fatal("expected a forwarded fix")
	}
}

func TestSampler_LatestFixWins(t *testing.T) {
	s := NewSampler(NewPushProvider(), WatchOptions{})

	s.offer(models.PositionSample{Latitude: 1})
	s.offer(models.PositionSample{Latitude: 2})

	got := <-s.Samples()
	assert.Equal(t, 2.0, got.Latitude)
}

func TestSampler_WatchErrorIsTerminal(t *testing.T) {
	provider := NewPushProvider()
	s := NewSampler(provider, WatchOptions{HighAccuracy: true, Timeout: time.Second})

	stop, err := s.StartTracking()
	require.NoError(t, err)
	defer stop()

	require.NoError(t, provider.Fail(errors.New("permission denied")))

	select {
	case err := <-s.Errs():
		assert.Contains(t, err.Error(), "permission denied")
	case <-time.After(time.Second):
		t.Fatal("expected a terminal watch error")
	}

	assert.False(t, s.Tracking())
	assert.Error(t, s.LastError())
}

func TestSampler_FixTimeout(t *testing.T) {
	provider := NewPushProvider()
	s := NewSampler(provider, WatchOptions{HighAccuracy: true, Timeout: 20 * time.Millisecond})

	stop, err := s.StartTracking()
	require.NoError(t, err)
	defer stop()

	select {
	case err := <-s.Errs():
		assert.ErrorIs(t, err, safety.ErrFixTimeout)
	case <-time.After(time.Second):
		t.Fatal("expected a fix timeout")
	}

	assert.False(t, s.Tracking())
	assert.ErrorIs(t, s.LastError(), safety.ErrFixTimeout)
}

func TestSampler_SecondStartWhileTrackingFails(t *testing.T) {
	provider := NewPushProvider()
	s := NewSampler(provider, WatchOptions{HighAccuracy: true, Timeout: time.Second})

	stop, err := s.StartTracking()
	require.NoError(t, err)
	defer stop()

	_, err = s.StartTracking()
	assert.Error(t, err)
}

func TestDefaultWatchOptions(t *testing.T) {
	opts := DefaultWatchOptions(models.TrackingConfig{FixTimeoutMs: 5000})

	assert.True(t, opts.HighAccuracy)
	assert.Equal(t, 5*time.Second, opts.Timeout)
	assert.Equal(t, time.Duration(0), opts.MaximumAge)
}

func TestPushProvider_OfferWithoutWatch(t *testing.T) {
	provider := NewPushProvider()

	err := provider.Offer(models.PositionSample{Latitude: 1})
	assert.Error(t, err)
}
