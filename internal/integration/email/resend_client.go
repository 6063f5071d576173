// Package email implements outbound mail delivery.
package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/financeflow/backend/internal/application/adapter"
)

// resendSender implements adapter.EmailSender on the Resend API.
type resendSender struct {
	client *resend.Client
	from   string
	apiKey string
}

// NewResendSender creates a Resend-backed email sender.
func NewResendSender(apiKey, from string) adapter.EmailSender {
	return &resendSender{
		client: resend.NewClient(apiKey),
		from:   from,
		apiKey: apiKey,
	}
}

// IsConfigured reports whether the sender has credentials to deliver mail.
func (s *resendSender) IsConfigured() bool {
	return s.apiKey != "" && s.from != ""
}

// Send delivers the message as plain text.
func (s *resendSender) Send(ctx context.Context, msg adapter.EmailMessage) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email sender is not configured")
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Body,
	}
	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send email via resend: %w", err)
	}
	return nil
}
