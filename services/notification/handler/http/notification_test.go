package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/saferide/saferide/internal/pkg/models"
	"github.com/saferide/saferide/services/notification/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotificationContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/internal/notifications/sos", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSendSOSNotifications_Handler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNotificationUC(ctrl)
	handler := NewNotificationHandler(mockUC)

	mockUC.EXPECT().
		DispatchSOS(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.SOSNotificationRequest) (*models.SOSNotificationResponse, error) {
			assert.Equal(t, "alert-1", req.AlertID)
			assert.Len(t, req.Contacts, 1)
			return &models.SOSNotificationResponse{
				Success:           true,
				AlertID:           req.AlertID,
				NotificationsSent: 1,
				Results: []models.NotificationResult{
					{ContactID: "c1", ContactName: "Ayu", PhoneSent: true},
				},
			}, nil
		})

	body := `{"alert_id":"alert-1","user_id":"user-a","location":{"lat":1,"lng":1},` +
		`"contacts":[{"id":"c1","user_id":"user-a","name":"Ayu","phone":"+628111","priority":1}]}`
	c, rec := newNotificationContext(t, body)

	require.NoError(t, handler.SendSOSNotifications(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool                            `json:"success"`
		Data    models.SOSNotificationResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, 1, envelope.Data.NotificationsSent)
}

func TestSendSOSNotifications_Handler_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewNotificationHandler(mocks.NewMockNotificationUC(ctrl))

	c, rec := newNotificationContext(t, `{"location":{"lat":1,"lng":1}}`)

	require.NoError(t, handler.SendSOSNotifications(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendSOSNotifications_Handler_DispatchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNotificationUC(ctrl)
	handler := NewNotificationHandler(mockUC)

	mockUC.EXPECT().
		DispatchSOS(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("profile store unreachable"))

	c, rec := newNotificationContext(t, `{"alert_id":"alert-1","user_id":"user-a","location":{"lat":1,"lng":1}}`)

	require.NoError(t, handler.SendSOSNotifications(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
