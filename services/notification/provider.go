package notification

import "context"

//go:generate mockgen -destination=mocks/mock_provider.go -package=mocks github.com/saferide/saferide/services/notification SMSProvider,EmailProvider

// SMSProvider delivers a message to a phone number. Implementations are
// pluggable; the default logs instead of sending.
type SMSProvider interface {
	SendSMS(ctx context.Context, phone, message string) error
}

// EmailProvider delivers a message to an email address
type EmailProvider interface {
	SendEmail(ctx context.Context, email, subject, message string) error
}
