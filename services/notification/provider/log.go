// Package provider contains notification delivery providers. Real SMS and
// email transports (Twilio, SendGrid) plug in behind the same interfaces;
// the log providers stand in until credentials are configured.
package provider

import (
	"context"

	"github.com/saferide/saferide/internal/pkg/logger"
	"github.com/saferide/saferide/services/notification"
)

// logSMSProvider logs SMS deliveries instead of sending them
type logSMSProvider struct{}

// NewLogSMSProvider creates an SMS provider that logs deliveries
func NewLogSMSProvider() notification.SMSProvider {
	return &logSMSProvider{}
}

func (p *logSMSProvider) SendSMS(ctx context.Context, phone, message string) error {
	logger.Info("SMS notification (log provider)",
		logger.String("phone", phone),
		logger.Int("message_length", len(message)))
	return nil
}

// logEmailProvider logs email deliveries instead of sending them
type logEmailProvider struct{}

// NewLogEmailProvider creates an email provider that logs deliveries
func NewLogEmailProvider() notification.EmailProvider {
	return &logEmailProvider{}
}

func (p *logEmailProvider) SendEmail(ctx context.Context, email, subject, message string) error {
	logger.Info("Email notification (log provider)",
		logger.String("email", email),
		logger.String("subject", subject),
		logger.Int("message_length", len(message)))
	return nil
}
