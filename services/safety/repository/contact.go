package repository

import (
	"context"
	"fmt"

	"github.com/saferide/saferide/internal/pkg/models"
)

// ListByUser returns the user's emergency contacts ordered by priority
// ascending, insertion order breaking ties. The list is read-only from this
// subsystem; lifecycle is owned by the contacts feature.
func (r *contactRepo) ListByUser(ctx context.Context, userID string) ([]*models.EmergencyContact, error) {
	query := `
		SELECT id, user_id, name, phone, email, relationship, priority, created_at
		FROM emergency_contacts
		WHERE user_id = $1
		ORDER BY priority ASC, created_at ASC
	`

	contacts := []*models.EmergencyContact{}
	if err := r.db.SelectContext(ctx, &contacts, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list emergency contacts: %w", err)
	}

	return contacts, nil
}
