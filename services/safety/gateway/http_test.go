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

func sosRequest() *models.SOSNotificationRequest {
	return &models.SOSNotificationRequest{
		AlertID:  "alert-1",
		UserID:   "user-a",
		Location: models.GeoLocation{Latitude: -6.175392, Longitude: 106.827153},
		Contacts: []*models.EmergencyContact{
			{ID: "c1", UserID: "user-a", Name: "Ayu", Phone: "+628111", Priority: 1},
		},
	}
}

func newTestGateway(serviceURL string) *safetyGW {
	cfg := &models.Config{}
	cfg.Services.NotificationServiceURL = serviceURL
	cfg.APIKey.SafetyService = "test-key"
	return NewSafetyGW(nil, cfg).(*safetyGW)
}

func TestSendSOSNotifications_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/internal/notifications/sos", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))

		var req models.SOSNotificationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alert-1", req.AlertID)
		assert.Len(t, req.Contacts, 1)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "SOS alerts sent to emergency contacts",
			"data": models.SOSNotificationResponse{
				Success:           true,
				AlertID:           req.AlertID,
				NotificationsSent: 1,
				Results: []models.NotificationResult{
					{ContactID: "c1", ContactName: "Ayu", PhoneSent: true},
				},
			},
		})
	}))
	defer server.Close()

	gw := newTestGateway(server.URL)

	resp, err := gw.SendSOSNotifications(context.Background(), sosRequest())
	require.NoError(t, err)
	assert.Equal(t, "alert-1", resp.AlertID)
	assert.Equal(t, 1, resp.NotificationsSent)
	require.Len(t, resp.Results, 1)
	assert.True(t, resp.Results[0].PhoneSent)
}

func TestSendSOSNotifications_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gw := newTestGateway(server.URL)

	_, err := gw.SendSOSNotifications(context.Background(), sosRequest())
	assert.Error(t, err)
}

func TestSendSOSNotifications_RejectedEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error":   "invalid request body",
		})
	}))
	defer server.Close()

	gw := newTestGateway(server.URL)

	_, err := gw.SendSOSNotifications(context.Background(), sosRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid request body")
}

func TestSendSOSNotifications_ServiceUnreachable(t *testing.T) {
	gw := newTestGateway("http://127.0.0.1:1")

	_, err := gw.SendSOSNotifications(context.Background(), sosRequest())
	assert.Error(t, err)
}
