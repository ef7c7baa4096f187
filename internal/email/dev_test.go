package email_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tylerdean1/devons-handyman-backend/internal/email"
)

func TestDevSender_WritesFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sender := email.NewDevSender(filepath.Join(dir, "outbox"))

	require.NoError(t, sender.Send(context.Background(), email.Message{
		To:      "a@x.com",
		Subject: "Your quote request",
		Text:    "plain",
		HTML:    "<html>rich</html>",
	}))

	entries, err := os.ReadDir(filepath.Join(dir, "outbox"))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	var sawHTML, sawText, sawJSON bool
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, "outbox", e.Name()))
		require.NoError(t, err)
		switch filepath.Ext(e.Name()) {
		case ".html":
			sawHTML = true
			assert.Equal(t, "<html>rich</html>", string(data))
		case ".txt":
			sawText = true
			assert.Equal(t, "plain", string(data))
		case ".json":
			sawJSON = true
			assert.Contains(t, string(data), `"to": "a@x.com"`)
			assert.Contains(t, string(data), `"subject": "Your quote request"`)
		}
		assert.Contains(t, e.Name(), "your_quote_request")
	}
	assert.True(t, sawHTML && sawText && sawJSON)
}
