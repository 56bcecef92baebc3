package notification

import "context"

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/saferide/saferide/services/notification ProfileRepo

// ProfileRepo resolves user display information for alert composition
type ProfileRepo interface {
	// GetDisplayName returns the user's full name, or an empty string when
	// no profile row exists.
	GetDisplayName(ctx context.Context, userID string) (string, error)
}
