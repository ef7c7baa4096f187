package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tylerdean1/devons-handyman-backend/internal/api"
	"github.com/tylerdean1/devons-handyman-backend/internal/cart"
	"github.com/tylerdean1/devons-handyman-backend/internal/config"
	"github.com/tylerdean1/devons-handyman-backend/internal/email"
	"github.com/tylerdean1/devons-handyman-backend/internal/quote"
)

func main() {
	// ── Logger ────────────────────────────────────────────────────────────────
	// JSON in production, pretty text in development.
	var logger *slog.Logger
	if os.Getenv("ENV") == "production" {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	// ── Config ────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger.Info("config loaded", "env", cfg.Env, "port", cfg.Port)

	// ── Email sender ──────────────────────────────────────────────────────────
	// Mailgun in real deployments; the filesystem dev sender when
	// EMAIL_DEV_DIR is set. Mailgun credentials are checked per submission by
	// the quote service, not here — the catalog and cart endpoints must work
	// even when email is unconfigured.
	var sender email.Sender
	if cfg.EmailDevDir != "" {
		sender = email.NewDevSender(cfg.EmailDevDir)
		logger.Info("email: writing messages to disk", "dir", cfg.EmailDevDir)
	} else {
		sender = email.NewMailgunClient(email.MailgunConfig{
			APIKey:     cfg.MailgunAPIKey,
			Domain:     cfg.MailgunDomain,
			OwnerEmail: cfg.OwnerEmail,
			TestMode:   cfg.TestMode,
		})
		if cfg.TestMode {
			logger.Info("email: mailgun test mode — messages accepted but not delivered")
		}
	}

	// ── Quote pipeline ────────────────────────────────────────────────────────
	quotes := quote.NewService(quote.Config{
		MailgunAPIKey:        cfg.MailgunAPIKey,
		MailgunDomain:        cfg.MailgunDomain,
		OwnerEmail:           cfg.OwnerEmail,
		DeliverIndependently: cfg.DeliverIndependently,
		DevMode:              cfg.EmailDevDir != "",
	}, sender, logger)

	// ── Cart store ────────────────────────────────────────────────────────────
	carts := cart.NewStore(cart.DefaultTTL)

	// ── HTTP server ───────────────────────────────────────────────────────────
	handler := api.NewServer(quotes, carts, api.Config{Env: cfg.Env}, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // two sequential Mailgun calls can be slow
		IdleTimeout:  120 * time.Second,
	}

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	// Root context cancelled by OS signal. Sweeper and HTTP server both
	// respect it.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Periodically drop abandoned carts.
	go sweepCarts(ctx, carts, logger)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until either a signal arrives or the server dies unexpectedly.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	// Give in-flight HTTP requests up to 20 seconds to finish.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// sweepCarts drops expired carts once an hour until ctx is cancelled.
func sweepCarts(ctx context.Context, carts *cart.Store, logger *slog.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := carts.Sweep(now); n > 0 {
				logger.Debug("swept expired carts", "count", n)
			}
		}
	}
}
