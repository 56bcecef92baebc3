package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContactRepoWithMock(t *testing.T) (*contactRepo, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return &contactRepo{db: sqlxDB}, mock
}

func TestListByUser_OrderedByPriority(t *testing.T) {
	repo, mock := newContactRepoWithMock(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "phone", "email", "relationship", "priority", "created_at"}).
		AddRow("c1", "user-a", "Ayu", "+628111", nil, nil, 1, now).
		AddRow("c2", "user-a", "Budi", "+628222", "budi@example.com", "brother", 2, now)

	mock.ExpectQuery("SELECT id, user_id, name, phone, email, relationship, priority, created_at").
		WithArgs("user-a").
		WillReturnRows(rows)

	contacts, err := repo.ListByUser(context.Background(), "user-a")
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Ayu", contacts[0].Name)
	assert.Equal(t, 1, contacts[0].Priority)
	assert.Nil(t, contacts[0].Email)
	assert.Equal(t, "Budi", contacts[1].Name)
	require.NotNil(t, contacts[1].Email)
	assert.Equal(t, "budi@example.com", *contacts[1].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser_NoContacts(t *testing.T) {
	repo, mock := newContactRepoWithMock(t)

	rows := sqlmock.NewRows([]string{"id", "user_id", "name", "phone", "email", "relationship", "priority", "created_at"})
	mock.ExpectQuery("SELECT id, user_id, name, phone, email, relationship, priority, created_at").
		WithArgs("user-a").
		WillReturnRows(rows)

	contacts, err := repo.ListByUser(context.Background(), "user-a")
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestListByUser_DatabaseError(t *testing.T) {
	repo, mock := newContactRepoWithMock(t)

	mock.ExpectQuery("SELECT id, user_id, name, phone, email, relationship, priority, created_at").
		WithArgs("user-a").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.ListByUser(context.Background(), "user-a")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list emergency contacts")
}
