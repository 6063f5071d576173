// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import "context"

// EmailMessage is a plain-text email to be delivered by an EmailSender.
type EmailMessage struct {
	To      string
	Subject string
	Body    string
}

// EmailSender defines the interface for outbound email delivery.
type EmailSender interface {
	// Send delivers the message. Delivery is best-effort; callers decide
	// whether a failure is fatal.
	Send(ctx context.Context, msg EmailMessage) error

	// IsConfigured reports whether the sender has credentials to deliver mail.
	IsConfigured() bool
}
