package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/saferide/saferide/services/notification"
)

// profileRepo reads user profile rows for alert composition
type profileRepo struct {
	db *sqlx.DB
}

// NewProfileRepo creates a new profile repository instance
func NewProfileRepo(db *sqlx.DB) notification.ProfileRepo {
	return &profileRepo{db: db}
}
