// Package email defines the interface for transactional email delivery and
// provides a Mailgun-backed implementation plus a filesystem sender for
// development.
package email

import (
	"context"
	"fmt"
)

// Message is one fully-rendered outbound email. Sender implementations add
// the from address and standard headers themselves.
type Message struct {
	To      string // recipient address
	Subject string
	Text    string // plain-text body, delivered verbatim
	HTML    string // self-contained HTML body
}

// Sender is the interface the quote pipeline uses to deliver email.
// Tests inject a stub that records calls without hitting the network.
type Sender interface {
	// Send makes a single delivery attempt. There is no retry — the caller
	// decides what a failure means for the rest of its work.
	Send(ctx context.Context, msg Message) error
}

// DeliveryError reports a non-success response from the email provider. The
// status code and response body are kept so operators can see exactly what
// the provider objected to.
type DeliveryError struct {
	StatusCode int
	Body       string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("mailgun error %d: %s", e.StatusCode, e.Body)
}
