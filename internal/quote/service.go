package quote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tylerdean1/devons-handyman-backend/internal/email"
)

// Config is the pipeline's delivery configuration snapshot, read once at
// startup and immutable afterwards.
type Config struct {
	MailgunAPIKey string
	MailgunDomain string
	OwnerEmail    string

	// DeliverIndependently attempts both sends even when the first fails and
	// reports the joined failures. Default (false) preserves the historical
	// behavior: customer first, owner skipped when the customer send fails.
	DeliverIndependently bool

	// DevMode disables the Mailgun credential check — the injected sender
	// (the filesystem dev sender) needs none.
	DevMode bool
}

// Service runs quote submissions end to end: config check, normalization,
// rendering for both audiences, and the two delivery calls.
type Service struct {
	cfg    Config
	sender email.Sender
	logger *slog.Logger
}

// NewService wires the pipeline. The sender decides how mail actually leaves
// the building; the service never constructs one itself.
func NewService(cfg Config, sender email.Sender, logger *slog.Logger) *Service {
	return &Service{cfg: cfg, sender: sender, logger: logger}
}

// Submit processes one raw submission body.
//
// The flow is strictly linear: config check → normalize → render both →
// deliver customer → deliver owner. Errors come back as ErrMissingConfig,
// *ValidationError, *email.DeliveryError (possibly wrapped), or a generic
// failure — the HTTP layer maps each to its status code.
func (s *Service) Submit(ctx context.Context, raw []byte) error {
	if !s.cfg.DevMode && (s.cfg.MailgunAPIKey == "" || s.cfg.MailgunDomain == "") {
		return ErrMissingConfig
	}

	req, err := Normalize(raw)
	if err != nil {
		return err
	}

	customer := RenderCustomer(req)
	owner := RenderOwner(req)

	customerMsg := email.Message{
		To:      req.CustomerEmail,
		Subject: customer.Subject,
		Text:    customer.Text,
		HTML:    customer.HTML,
	}
	ownerMsg := email.Message{
		To:      s.cfg.OwnerEmail,
		Subject: owner.Subject,
		Text:    owner.Text,
		HTML:    owner.HTML,
	}

	if s.cfg.DeliverIndependently {
		var cErr, oErr error
		if err := s.sender.Send(ctx, customerMsg); err != nil {
			cErr = fmt.Errorf("send customer email: %w", err)
		}
		if err := s.sender.Send(ctx, ownerMsg); err != nil {
			oErr = fmt.Errorf("send owner email: %w", err)
		}
		if err := errors.Join(cErr, oErr); err != nil {
			return err
		}
	} else {
		// Sequential fail-fast: a failed customer send aborts the submission
		// and the owner is never notified.
		if err := s.sender.Send(ctx, customerMsg); err != nil {
			return fmt.Errorf("send customer email: %w", err)
		}
		if err := s.sender.Send(ctx, ownerMsg); err != nil {
			return fmt.Errorf("send owner email: %w", err)
		}
	}

	s.logger.Info("quote submitted",
		"customer_email", req.CustomerEmail,
		"has_meta", req.MetaJSON != "",
	)
	return nil
}
