package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DevSender implements Sender for local development. Instead of calling
// Mailgun it writes each message to a directory: the HTML body as .html, the
// text body as .txt, and the envelope (to, subject, timestamp) as .json.
type DevSender struct {
	dir string
}

// NewDevSender creates a development sender that saves emails to dir. The
// directory is created on first send if it does not exist.
func NewDevSender(dir string) *DevSender {
	return &DevSender{dir: dir}
}

type devEnvelope struct {
	Timestamp string `json:"timestamp"`
	To        string `json:"to"`
	Subject   string `json:"subject"`
}

// Send writes the message to disk instead of delivering it.
func (d *DevSender) Send(ctx context.Context, msg Message) error {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("email: create dev dir: %w", err)
	}

	now := time.Now()
	base := filepath.Join(d.dir,
		fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(msg.Subject)))

	if err := os.WriteFile(base+".html", []byte(msg.HTML), 0o644); err != nil {
		return fmt.Errorf("email: write html: %w", err)
	}
	if err := os.WriteFile(base+".txt", []byte(msg.Text), 0o644); err != nil {
		return fmt.Errorf("email: write text: %w", err)
	}

	env, err := json.MarshalIndent(devEnvelope{
		Timestamp: now.Format(time.RFC3339),
		To:        msg.To,
		Subject:   msg.Subject,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("email: marshal envelope: %w", err)
	}
	if err := os.WriteFile(base+".json", env, 0o644); err != nil {
		return fmt.Errorf("email: write envelope: %w", err)
	}
	return nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename turns a subject line into a safe, reasonably short file
// name segment.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "")
	if len(s) > 80 {
		s = s[:80]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
