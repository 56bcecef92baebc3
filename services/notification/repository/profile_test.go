package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileRepoWithMock(t *testing.T) (*profileRepo, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &profileRepo{db: sqlx.NewDb(db, "sqlmock")}, mock
}

func TestGetDisplayName_Found(t *testing.T) {
	repo, mock := newProfileRepoWithMock(t)

	mock.ExpectQuery("SELECT full_name FROM profiles").
		WithArgs("user-a").
		WillReturnRows(sqlmock.NewRows([]string{"full_name"}).AddRow("Sari Dewi"))

	name, err := repo.GetDisplayName(context.Background(), "user-a")
	require.NoError(t, err)
	assert.Equal(t, "Sari Dewi", name)
}

func TestGetDisplayName_NoProfileRow(t *testing.T) {
	repo, mock := newProfileRepoWithMock(t)

	mock.ExpectQuery("SELECT full_name FROM profiles").
		WithArgs("user-a").
		WillReturnRows(sqlmock.NewRows([]string{"full_name"}))

	name, err := repo.GetDisplayName(context.Background(), "user-a")
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestGetDisplayName_NullName(t *testing.T) {
	repo, mock := newProfileRepoWithMock(t)

	mock.ExpectQuery("SELECT full_name FROM profiles").
		WithArgs("user-a").
		WillReturnRows(sqlmock.NewRows([]string{"full_name"}).AddRow(nil))

	name, err := repo.GetDisplayName(context.Background(), "user-a")
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestGetDisplayName_DatabaseError(t *testing.T) {
	repo, mock := newProfileRepoWithMock(t)

	mock.ExpectQuery("SELECT full_name FROM profiles").
		WithArgs("user-a").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.GetDisplayName(context.Background(), "user-a")
	assert.Error(t, err)
}
