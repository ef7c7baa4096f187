// Package config loads and validates all environment variables at startup.
// Every other package receives typed values — nothing reads os.Getenv directly.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the fully-parsed application configuration.
type Config struct {
	// ── Server ────────────────────────────────────────────────────────────────
	Port string `env:"PORT" envDefault:"8080"`
	Env  string `env:"ENV" envDefault:"development"` // "development" | "staging" | "production"

	// ── Mailgun ───────────────────────────────────────────────────────────────
	// The API key and sending domain are deliberately NOT required here. The
	// quote pipeline checks them per submission and reports their absence as
	// its own configuration error, so the rest of the API (catalog, cart)
	// stays up when email is unconfigured.
	MailgunAPIKey string `env:"MAILGUN_API_KEY"`
	MailgunDomain string `env:"MAILGUN_DOMAIN"` // e.g. "mg.devonmccleese.com"

	// OwnerEmail receives the owner-facing notification and is also used as
	// the Reply-To and unsubscribe address on outbound mail.
	OwnerEmail string `env:"OWNER_EMAIL" envDefault:"devonmgm@gmail.com"`

	// TestMode asks Mailgun to accept messages without delivering them
	// (o:testmode). Lets the full pipeline run against the real API in
	// previews without emailing anyone.
	TestMode bool `env:"MAILGUN_TEST_MODE"`

	// DeliverIndependently switches the submission pipeline from the default
	// fail-fast ordering (customer first, owner skipped on failure) to
	// attempting both deliveries and reporting joined failures.
	DeliverIndependently bool `env:"QUOTE_DELIVER_INDEPENDENTLY"`

	// EmailDevDir, when set, replaces the Mailgun client with a sender that
	// writes each email to this directory instead. Development only.
	EmailDevDir string `env:"EMAIL_DEV_DIR"`
}

// Load reads a .env file when present (real environment variables win), then
// parses the environment into a Config.
func Load() (*Config, error) {
	// Ignore errors — the .env file might not exist and that's ok.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	return cfg, nil
}
