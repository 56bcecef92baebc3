package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/saferide/saferide/internal/pkg/database"
	"github.com/saferide/saferide/internal/pkg/models"
	"github.com/saferide/saferide/services/safety"
)

// locationRepo persists the append-only location log in Postgres and keeps
// the latest sample per ride participant in Redis.
type locationRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) safety.LocationRepo {
	return &locationRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// alertRepo persists SOS alerts in Postgres
type alertRepo struct {
	db *sqlx.DB
}

// NewAlertRepository creates a new alert repository
func NewAlertRepository(db *sqlx.DB) safety.AlertRepo {
	return &alertRepo{db: db}
}

// contactRepo reads emergency contacts from Postgres
type contactRepo struct {
	db *sqlx.DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *sqlx.DB) safety.ContactRepo {
	return &contactRepo{db: db}
}
