package email

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// senderName and senderLocal form the from address:
	// "Devon's Handyman <quotes@{domain}>".
	senderName  = "Devon's Handyman"
	senderLocal = "quotes"

	defaultAPIBase = "https://api.mailgun.net"
)

// MailgunConfig holds everything the Mailgun client needs. APIBase is
// optional and exists so tests can point the client at a local server.
type MailgunConfig struct {
	APIKey     string
	Domain     string // sending domain, e.g. "mg.devonmccleese.com"
	OwnerEmail string // Reply-To and unsubscribe target
	TestMode   bool   // adds o:testmode=yes: Mailgun accepts but does not deliver
	APIBase    string
}

// mailgunClient is the concrete Sender backed by Mailgun's messages API.
type mailgunClient struct {
	cfg        MailgunConfig
	httpClient *http.Client
}

// NewMailgunClient returns a Sender that delivers email via Mailgun.
func NewMailgunClient(cfg MailgunConfig) Sender {
	if cfg.APIBase == "" {
		cfg.APIBase = defaultAPIBase
	}
	return &mailgunClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Send posts one form-encoded message to Mailgun. Non-2xx responses become a
// *DeliveryError carrying the provider's status and body text.
func (c *mailgunClient) Send(ctx context.Context, msg Message) error {
	form := url.Values{}
	form.Set("from", fmt.Sprintf("%s <%s@%s>", senderName, senderLocal, c.cfg.Domain))
	form.Set("to", msg.To)
	form.Set("subject", msg.Subject)
	form.Set("text", msg.Text)
	form.Set("html", msg.HTML)
	form.Set("h:Reply-To", c.cfg.OwnerEmail)
	form.Set("h:List-Unsubscribe", fmt.Sprintf("<mailto:%s?subject=unsubscribe>", c.cfg.OwnerEmail))
	form.Set("h:List-Unsubscribe-Post", "List-Unsubscribe=One-Click")
	if c.cfg.TestMode {
		form.Set("o:testmode", "yes")
	}

	endpoint := fmt.Sprintf("%s/v3/%s/messages", c.cfg.APIBase, c.cfg.Domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return fmt.Errorf("email: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth("api", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email: http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return fmt.Errorf("email: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &DeliveryError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	return nil
}
