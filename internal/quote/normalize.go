package quote

import (
	"encoding/json"
	"fmt"
)

const (
	// maxQuoteLen caps the free-form quote text. Hostile payloads aside, a
	// legitimate quote is a few hundred characters.
	maxQuoteLen = 16 * 1024

	// maxMetaLen caps the serialized form of the meta side channel.
	maxMetaLen = 16 * 1024
)

// Request is a validated quote submission.
type Request struct {
	CustomerEmail string
	CustomerName  string // optional; renderers substitute their own placeholder
	Quote         string // free-form itemized request; opaque, never parsed

	// Meta is optional structured side-channel data (phone, address,
	// scheduling, raw cart items). MetaJSON is its pretty-printed form,
	// computed once here; empty when Meta is absent.
	Meta     any
	MetaJSON string
}

// Normalize turns a raw request body of unknown shape into a Request.
//
// The body may be absent, malformed JSON, or a non-object JSON value — all of
// those normalize to an empty object so the required-field check below
// produces the one user-facing validation message instead of a parse error.
// This mirrors the deployed behavior of the original endpoint.
func Normalize(raw []byte) (Request, error) {
	fields := map[string]any{}
	if len(raw) > 0 {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err == nil {
			if m, ok := decoded.(map[string]any); ok {
				fields = m
			}
		}
	}

	req := Request{
		CustomerEmail: stringField(fields, "customerEmail"),
		CustomerName:  stringField(fields, "customerName"),
		Quote:         stringField(fields, "quote"),
		Meta:          fields["meta"],
	}

	if req.CustomerEmail == "" || req.Quote == "" {
		return Request{}, validationErrorf("Missing fields: customerEmail and quote are required.")
	}
	if len(req.Quote) > maxQuoteLen {
		return Request{}, validationErrorf(fmt.Sprintf("Quote details exceed the maximum length of %d characters.", maxQuoteLen))
	}

	if req.Meta != nil {
		pretty, err := json.MarshalIndent(req.Meta, "", "  ")
		if err != nil {
			// Meta came out of json.Unmarshal, so this is a programmer error
			// path; let it surface as a generic failure.
			return Request{}, fmt.Errorf("quote: serialize meta: %w", err)
		}
		if len(pretty) > maxMetaLen {
			return Request{}, validationErrorf(fmt.Sprintf("Additional info exceeds the maximum length of %d characters.", maxMetaLen))
		}
		req.MetaJSON = string(pretty)
	}

	return req, nil
}

// stringField returns the value for key only when it is a non-empty JSON
// string. Any other type is treated as absent — "non-empty string" is the
// contract for every text field.
func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
