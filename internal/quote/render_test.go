package quote_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tylerdean1/devons-handyman-backend/internal/quote"
)

func mustNormalize(t *testing.T, body string) quote.Request {
	t.Helper()
	req, err := quote.Normalize([]byte(body))
	require.NoError(t, err)
	return req
}

func TestRenderCustomer_Greeting(t *testing.T) {
	t.Parallel()

	named := quote.RenderCustomer(mustNormalize(t,
		`{"customerEmail":"a@x.com","customerName":"Jo","quote":"x"}`))
	assert.Contains(t, named.Text, "Hi Jo,")
	assert.Contains(t, named.HTML, "Hi Jo,")

	anon := quote.RenderCustomer(mustNormalize(t,
		`{"customerEmail":"a@x.com","quote":"x"}`))
	assert.Contains(t, anon.Text, "Hi there,")
	assert.Contains(t, anon.HTML, "Hi there,")
}

func TestRenderCustomer_Subject(t *testing.T) {
	t.Parallel()

	r := quote.RenderCustomer(mustNormalize(t, `{"customerEmail":"a@x.com","quote":"x"}`))
	assert.Contains(t, r.Subject, "Your quote")
}

// User content must be escaped in the HTML body and left verbatim in the
// plain-text body.
func TestRender_EscapesUserContent(t *testing.T) {
	t.Parallel()

	req := mustNormalize(t,
		`{"customerEmail":"a@x.com","customerName":"<b>Jo & Co</b>","quote":"fix <script>alert(1)</script> & tile"}`)

	for _, r := range []quote.RenderedEmail{quote.RenderCustomer(req), quote.RenderOwner(req)} {
		assert.NotContains(t, r.HTML, "<script>")
		assert.NotContains(t, r.HTML, "<b>Jo")
		assert.Contains(t, r.HTML, "&lt;script&gt;")
		assert.Contains(t, r.HTML, "&amp; tile")

		assert.Contains(t, r.Text, "fix <script>alert(1)</script> & tile")
	}
}

// Newlines in the quote must render as line breaks: the block that carries
// the quote text declares white-space:pre-line and keeps the newlines.
func TestRender_PreservesLineBreaks(t *testing.T) {
	t.Parallel()

	req := mustNormalize(t,
		`{"customerEmail":"a@x.com","quote":"Fix sink\nReplace tile\n\nPaint fence"}`)

	r := quote.RenderCustomer(req)
	assert.Contains(t, r.HTML, "white-space:pre-line")
	assert.Contains(t, r.HTML, "Fix sink\nReplace tile\n\nPaint fence")
	assert.Contains(t, r.Text, "Fix sink\nReplace tile\n\nPaint fence")
}

func TestRenderOwner_CustomerLine(t *testing.T) {
	t.Parallel()

	named := quote.RenderOwner(mustNormalize(t,
		`{"customerEmail":"a@x.com","customerName":"Jo","quote":"x"}`))
	assert.Contains(t, named.Text, "Customer: Jo")
	assert.Contains(t, named.HTML, "mailto:a%40x.com")
	assert.Contains(t, named.HTML, "a@x.com")
	assert.Equal(t, "New Quote Request from Jo", named.Subject)

	anon := quote.RenderOwner(mustNormalize(t,
		`{"customerEmail":"a@x.com","quote":"x"}`))
	assert.Contains(t, anon.Text, "Customer: Not provided")
	assert.Contains(t, anon.HTML, "Not provided")
	assert.Equal(t, "New Quote Request from a@x.com", anon.Subject)
}

func TestRenderOwner_MetaSection(t *testing.T) {
	t.Parallel()

	with := quote.RenderOwner(mustNormalize(t,
		`{"customerEmail":"a@x.com","quote":"x","meta":{"phone":"555-0100"}}`))
	assert.Contains(t, with.HTML, "Additional info")
	assert.Contains(t, with.HTML, "555-0100")
	assert.Contains(t, with.Text, `"phone": "555-0100"`)

	without := quote.RenderOwner(mustNormalize(t,
		`{"customerEmail":"a@x.com","quote":"x"}`))
	assert.NotContains(t, without.HTML, "Additional info")
	assert.Contains(t, without.Text, "Additional Info:\n—")
}

// The customer email never includes the meta side channel.
func TestRenderCustomer_NoMeta(t *testing.T) {
	t.Parallel()

	r := quote.RenderCustomer(mustNormalize(t,
		`{"customerEmail":"a@x.com","quote":"x","meta":{"secret":"555-0100"}}`))
	assert.NotContains(t, r.HTML, "555-0100")
	assert.NotContains(t, r.Text, "555-0100")
}
