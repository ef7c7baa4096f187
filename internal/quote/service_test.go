package quote_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tylerdean1/devons-handyman-backend/internal/email"
	"github.com/tylerdean1/devons-handyman-backend/internal/quote"
)

// stubSender records every delivery attempt. errs[i] is returned for the
// i-th call; calls beyond the slice succeed.
type stubSender struct {
	sent []email.Message
	errs []error
}

func (s *stubSender) Send(_ context.Context, msg email.Message) error {
	i := len(s.sent)
	s.sent = append(s.sent, msg)
	if i < len(s.errs) {
		return s.errs[i]
	}
	return nil
}

func testConfig() quote.Config {
	return quote.Config{
		MailgunAPIKey: "key-test",
		MailgunDomain: "mg.example.com",
		OwnerEmail:    "owner@example.com",
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const validBody = `{"customerEmail":"a@x.com","customerName":"Jo","quote":"Fix sink\nReplace tile"}`

func TestSubmit_Success(t *testing.T) {
	t.Parallel()

	sender := &stubSender{}
	svc := quote.NewService(testConfig(), sender, discardLogger())

	err := svc.Submit(context.Background(), []byte(validBody))
	require.NoError(t, err)

	// Exactly two deliveries: customer first, then owner.
	require.Len(t, sender.sent, 2)
	assert.Equal(t, "a@x.com", sender.sent[0].To)
	assert.Contains(t, sender.sent[0].Subject, "Your quote")
	assert.Equal(t, "owner@example.com", sender.sent[1].To)
	assert.Contains(t, sender.sent[1].Subject, "New Quote Request from Jo")
}

func TestSubmit_MissingConfig(t *testing.T) {
	t.Parallel()

	cases := map[string]quote.Config{
		"no api key": {MailgunDomain: "mg.example.com", OwnerEmail: "o@x.com"},
		"no domain":  {MailgunAPIKey: "key-test", OwnerEmail: "o@x.com"},
		"neither":    {OwnerEmail: "o@x.com"},
	}

	for name, cfg := range cases {
		cfg := cfg
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			sender := &stubSender{}
			svc := quote.NewService(cfg, sender, discardLogger())

			err := svc.Submit(context.Background(), []byte(validBody))
			require.ErrorIs(t, err, quote.ErrMissingConfig)
			assert.Empty(t, sender.sent, "no delivery may be attempted without config")
		})
	}
}

func TestSubmit_DevModeSkipsConfigCheck(t *testing.T) {
	t.Parallel()

	sender := &stubSender{}
	svc := quote.NewService(quote.Config{OwnerEmail: "o@x.com", DevMode: true}, sender, discardLogger())

	require.NoError(t, svc.Submit(context.Background(), []byte(validBody)))
	assert.Len(t, sender.sent, 2)
}

func TestSubmit_ValidationFailureSendsNothing(t *testing.T) {
	t.Parallel()

	sender := &stubSender{}
	svc := quote.NewService(testConfig(), sender, discardLogger())

	err := svc.Submit(context.Background(), []byte(`{"quote":"x"}`))

	var vErr *quote.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, sender.sent)
}

func TestSubmit_FailFast(t *testing.T) {
	t.Parallel()

	deliveryErr := &email.DeliveryError{StatusCode: 401, Body: "Forbidden"}
	sender := &stubSender{errs: []error{deliveryErr}}
	svc := quote.NewService(testConfig(), sender, discardLogger())

	err := svc.Submit(context.Background(), []byte(validBody))

	// The customer send failed, so the owner is never attempted.
	var dErr *email.DeliveryError
	require.ErrorAs(t, err, &dErr)
	assert.Equal(t, 401, dErr.StatusCode)
	assert.Len(t, sender.sent, 1)
	assert.Contains(t, err.Error(), "customer")
}

func TestSubmit_OwnerFailureAfterCustomerSuccess(t *testing.T) {
	t.Parallel()

	sender := &stubSender{errs: []error{nil, &email.DeliveryError{StatusCode: 500, Body: "boom"}}}
	svc := quote.NewService(testConfig(), sender, discardLogger())

	err := svc.Submit(context.Background(), []byte(validBody))

	require.Error(t, err)
	assert.Len(t, sender.sent, 2)
	assert.Contains(t, err.Error(), "owner")
}

func TestSubmit_IndependentDelivery(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.DeliverIndependently = true

	// Customer send fails, owner still attempted.
	sender := &stubSender{errs: []error{&email.DeliveryError{StatusCode: 400, Body: "bad address"}}}
	svc := quote.NewService(cfg, sender, discardLogger())

	err := svc.Submit(context.Background(), []byte(validBody))

	require.Error(t, err)
	assert.Len(t, sender.sent, 2)
	assert.Equal(t, "owner@example.com", sender.sent[1].To)
}

func TestSubmit_IndependentDeliveryBothFail(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.DeliverIndependently = true

	sender := &stubSender{errs: []error{
		&email.DeliveryError{StatusCode: 400, Body: "bad customer"},
		&email.DeliveryError{StatusCode: 500, Body: "bad owner"},
	}}
	svc := quote.NewService(cfg, sender, discardLogger())

	err := svc.Submit(context.Background(), []byte(validBody))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad customer")
	assert.Contains(t, err.Error(), "bad owner")
}
