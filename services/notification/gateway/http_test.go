package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saferide/saferide/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serviceURL string) *safetyClient {
	cfg := &models.Config{}
	cfg.Services.SafetyServiceURL = serviceURL
	cfg.APIKey.NotificationService = "test-key"
	return NewSafetyClient(cfg).(*safetyClient)
}

func TestLatestRideLocation_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/internal/rides/ride-1/location", r.URL.Path)
		assert.Equal(t, "user-a", r.URL.Query().Get("user_id"))
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Location retrieved",
			"data": models.LocationRecord{
				RideID: "ride-1",
				UserID: "user-a",
				PositionSample: models.PositionSample{Latitude: -6.175392, Longitude: 106.827153},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	record, err := client.LatestRideLocation(context.Background(), "ride-1", "user-a")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "user-a", record.UserID)
	assert.InDelta(t, -6.175392, record.Latitude, 1e-9)
}

func TestLatestRideLocation_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "location not found",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.LatestRideLocation(context.Background(), "ride-1", "user-a")
	assert.Error(t, err)
}

func TestLatestRideLocation_ServiceUnreachable(t *testing.T) {
	client := newTestClient("http://127.0.0.1:1")
	_, err := client.LatestRideLocation(context.Background(), "ride-1", "user-a")
	assert.Error(t, err)
}
