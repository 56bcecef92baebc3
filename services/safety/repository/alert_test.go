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

func newAlertRepoWithMock(t *testing.T) (*alertRepo, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return &alertRepo{db: sqlxDB}, mock
}

func TestCreateAlert_Success(t *testing.T) {
	repo, mock := newAlertRepoWithMock(t)

	alert := &models.SOSAlert{
		ID:        uuid.New(),
		UserID:    "user-a",
		Latitude:  -6.175392,
		Longitude: 106.827153,
		Status:    models.SOSStatusActive,
		CreatedAt: time.Now(),
	}

	mock.ExpectExec("INSERT INTO sos_alerts").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateAlert(context.Background(), alert)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAlert_DatabaseError(t *testing.T) {
	repo, mock := newAlertRepoWithMock(t)

	mock.ExpectExec("INSERT INTO sos_alerts").
		WillReturnError(errors.New("connection refused"))

	err := repo.CreateAlert(context.Background(), &models.SOSAlert{
		ID:     uuid.New(),
		UserID: "user-a",
		Status: models.SOSStatusActive,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert sos alert")
}
