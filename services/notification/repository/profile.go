package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// GetDisplayName returns the user's full name. A missing profile row is not
// an error; the caller falls back to a generic label.
func (r *profileRepo) GetDisplayName(ctx context.Context, userID string) (string, error) {
	var fullName sql.NullString
	query := `SELECT full_name FROM profiles WHERE id = $1`

	err := r.db.GetContext(ctx, &fullName, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get user profile: %w", err)
	}

	return fullName.String, nil
}
