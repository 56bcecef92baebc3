package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/saferide/saferide/internal/pkg/models"
	"github.com/saferide/saferide/services/safety"
	"github.com/saferide/saferide/services/safety/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sosMocks struct {
	locationRepo *mocks.MockLocationRepo
	alertRepo    *mocks.MockAlertRepo
	contactRepo  *mocks.MockContactRepo
	gw           *mocks.MockSafetyGW
}

func newSOSUC(t *testing.T) (*SafetyUC, *sosMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &sosMocks{
		locationRepo: mocks.NewMockLocationRepo(ctrl),
		alertRepo:    mocks.NewMockAlertRepo(ctrl),
		contactRepo:  mocks.NewMockContactRepo(ctrl),
		gw:           mocks.NewMockSafetyGW(ctrl),
	}
	uc := NewSafetyUC(trackingTestConfig(), m.locationRepo, m.alertRepo, m.contactRepo, m.gw)
	return uc, m
}

func sosContacts() []*models.EmergencyContact {
	return []*models.EmergencyContact{
		{ID: "c1", UserID: "user-a", Name: "Ayu", Phone: "+628111", Priority: 1, CreatedAt: time.Now()},
		{ID: "c2", UserID: "user-a", Name: "Budi", Phone: "+628222", Priority: 2, CreatedAt: time.Now()},
	}
}

func TestActivateSOS_Success(t *testing.T) {
	uc, m := newSOSUC(t)

	req := &models.SOSRequest{
		UserID:   "user-a",
		Location: &models.PositionSample{Latitude: -6.175392, Longitude: 106.827153, RecordedAt: time.Now()},
	}

	m.alertRepo.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.SOSAlert) error {
			assert.Equal(t, "user-a", alert.UserID)
			assert.Equal(t, models.SOSStatusActive, alert.Status)
			assert.Equal(t, req.Location.Latitude, alert.Latitude)
			return nil
		})
	m.contactRepo.EXPECT().
		ListByUser(gomock.Any(), "user-a").
		Return(sosContacts(), nil)
	m.gw.EXPECT().
		SendSOSNotifications(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fanout *models.SOSNotificationRequest) (*models.SOSNotificationResponse, error) {
			assert.Equal(t, "user-a", fanout.UserID)
			assert.Len(t, fanout.Contacts, 2)
			return &models.SOSNotificationResponse{
				Success:           true,
				AlertID:           fanout.AlertID,
				NotificationsSent: 2,
				Results: []models.NotificationResult{
					{ContactID: "c1", ContactName: "Ayu", PhoneSent: true},
					{ContactID: "c2", ContactName: "Budi", PhoneSent: true},
				},
			}, nil
		})
	m.gw.EXPECT().
		PublishUserNotice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, notice *models.UserNotice) error {
			assert.Equal(t, models.NoticeSOSActivated, notice.Code)
			return nil
		})

	activation, err := uc.ActivateSOS(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, activation.Alert)
	require.NotNil(t, activation.Notifications)
	assert.Equal(t, 2, activation.Notifications.NotificationsSent)
}

func TestActivateSOS_NoLocation(t *testing.T) {
	uc, _ := newSOSUC(t)

	// No location and no active session to fall back to: no writes happen
	_, err := uc.ActivateSOS(context.Background(), &models.SOSRequest{UserID: "user-a"})
	assert.ErrorIs(t, err, safety.ErrLocationUnavailable)
}

func TestActivateSOS_AlertCreationFailureIsFatal(t *testing.T) {
	uc, m := newSOSUC(t)

	m.alertRepo.EXPECT().
		CreateAlert(gomock.Any(), gomock.Any()).
		Return(errors.New("connection refused"))

	_, err := uc.ActivateSOS(context.Background(), &models.SOSRequest{
		UserID:   "user-a",
		Location: &models.PositionSample{Latitude: 1, Longitude: 1},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create sos alert")
}

func TestActivateSOS_NoContactsConfigured(t *testing.T) {
	uc, m := newSOSUC(t)

	// The alert row is created before the contact lookup and stays in place
	m.alertRepo.EXPECT().CreateAlert(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.contactRepo.EXPECT().ListByUser(gomock.Any(), "user-a").Return(nil, nil)

	_, err := uc.ActivateSOS(context.Background(), &models.SOSRequest{
		UserID:   "user-a",
		Location: &models.PositionSample{Latitude: 1, Longitude: 1},
	})
	assert.ErrorIs(t, err, safety.ErrNoContactsConfigured)
}

func TestActivateSOS_FanoutFailureStillSucceeds(t *testing.T) {
	uc, m := newSOSUC(t)

	m.alertRepo.EXPECT().CreateAlert(gomock.Any(), gomock.Any()).Return(nil)
	m.contactRepo.EXPECT().ListByUser(gomock.Any(), "user-a").Return(sosContacts(), nil)
	m.gw.EXPECT().
		SendSOSNotifications(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("notification service unreachable"))
	m.gw.EXPECT().PublishUserNotice(gomock.Any(), gomock.Any()).Return(nil)

	activation, err := uc.ActivateSOS(context.Background(), &models.SOSRequest{
		UserID:   "user-a",
		Location: &models.PositionSample{Latitude: 1, Longitude: 1},
	})
	require.NoError(t, err)
	require.NotNil(t, activation.Alert)
	assert.Nil(t, activation.Notifications)
}

func TestActivateSOS_NotIdempotent(t *testing.T) {
	uc, m := newSOSUC(t)

	// Two activations create two independent alert rows and two fan-outs
	m.alertRepo.EXPECT().CreateAlert(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	m.contactRepo.EXPECT().ListByUser(gomock.Any(), "user-a").Return(sosContacts(), nil).Times(2)
	m.gw.EXPECT().
		SendSOSNotifications(gomock.Any(), gomock.Any()).
		Return(&models.SOSNotificationResponse{Success: true, NotificationsSent: 2}, nil).
		Times(2)
	m.gw.EXPECT().PublishUserNotice(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	req := &models.SOSRequest{
		UserID:   "user-a",
		Location: &models.PositionSample{Latitude: 1, Longitude: 1},
	}

	first, err := uc.ActivateSOS(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.ActivateSOS(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.Alert.ID, second.Alert.ID)
}
