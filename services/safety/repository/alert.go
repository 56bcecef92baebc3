package repository

import (
	"context"
	"fmt"

	"github.com/saferide/saferide/internal/pkg/models"
)

// CreateAlert inserts a new SOS alert row
func (r *alertRepo) CreateAlert(ctx context.Context, alert *models.SOSAlert) error {
	query := `
		INSERT INTO sos_alerts (
			id, user_id, ride_id, lat, lng, status, notes, created_at
		) VALUES (
			:id, :user_id, :ride_id, :lat, :lng, :status, :notes, :created_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, alert); err != nil {
		return fmt.Errorf("failed to insert sos alert: %w", err)
	}

	return nil
}
