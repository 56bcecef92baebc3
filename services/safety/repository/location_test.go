package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/saferide/saferide/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocationRepoWithMock(t *testing.T) (*locationRepo, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	cfg := &models.Config{
		Tracking: models.TrackingConfig{LocationTTLHours: 24},
	}
	// No Redis client wired: the cache refresh is skipped, the log insert
	// is the behavior under test.
	return &locationRepo{cfg: cfg, db: sqlxDB}, mock
}

func testLocationRecord() *models.LocationRecord {
	return &models.LocationRecord{
		ID:       uuid.New(),
		RideID:   "ride-1",
		UserID:   "user-a",
		UserType: models.UserTypeDriver,
		PositionSample: models.PositionSample{
			Latitude:   -6.175392,
			Longitude:  106.827153,
			Accuracy:   5,
			RecordedAt: time.Now(),
		},
		Geohash:   "qqguyu9",
		CreatedAt: time.Now(),
	}
}

func TestAppendLocation_Success(t *testing.T) {
	repo, mock := newLocationRepoWithMock(t)

	mock.ExpectExec("INSERT INTO ride_locations").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AppendLocation(context.Background(), testLocationRecord())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendLocation_EveryPublishInsertsARow(t *testing.T) {
	repo, mock := newLocationRepoWithMock(t)

	// A stationary device publishing the same position twice writes two rows
	mock.ExpectExec("INSERT INTO ride_locations").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO ride_locations").WillReturnResult(sqlmock.NewResult(0, 1))

	record := testLocationRecord()
	require.NoError(t, repo.AppendLocation(context.Background(), record))
	require.NoError(t, repo.AppendLocation(context.Background(), record))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendLocation_DatabaseError(t *testing.T) {
	repo, mock := newLocationRepoWithMock(t)

	mock.ExpectExec("INSERT INTO ride_locations").
		WillReturnError(errors.New("connection refused"))

	err := repo.AppendLocation(context.Background(), testLocationRecord())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert location record")
}

func TestGetLatestLocation_NoCacheConfigured(t *testing.T) {
	repo, _ := newLocationRepoWithMock(t)

	_, err := repo.GetLatestLocation(context.Background(), "ride-1", "user-a")
	assert.Error(t, err)
}

func TestCounterpartDistance_NoCacheConfigured(t *testing.T) {
	repo, _ := newLocationRepoWithMock(t)

	_, _, err := repo.CounterpartDistance(context.Background(), "ride-1", "user-a",
		models.GeoLocation{Latitude: -6.175392, Longitude: 106.827153})
	assert.Error(t, err)
}
