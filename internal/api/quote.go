package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/tylerdean1/devons-handyman-backend/internal/quote"
)

// ─── POST /api/quote ──────────────────────────────────────────────────────────

// handleSendQuote accepts a quote submission and runs the email pipeline.
//
// The body is read raw and handed to the pipeline's normalizer, which
// tolerates absent, malformed, and non-object JSON — the browser form has
// shipped all three over the years. Validation, rendering, and delivery
// errors come back typed and are mapped to the responses the frontend
// expects.
func (s *Server) handleSendQuote(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondErr(w, http.StatusBadRequest, "Request body is too large.")
			return
		}
		s.respondInternalErr(w, r, err)
		return
	}

	if err := s.quotes.Submit(r.Context(), raw); err != nil {
		s.respondQuoteErr(w, r, err)
		return
	}

	respond(w, http.StatusOK, map[string]bool{"ok": true})
}

// respondQuoteErr maps pipeline errors onto the HTTP contract. Shared with
// the cart submission handler.
func (s *Server) respondQuoteErr(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, quote.ErrMissingConfig) {
		respondErr(w, http.StatusInternalServerError, "Missing Mailgun configuration")
		return
	}

	var vErr *quote.ValidationError
	if errors.As(err, &vErr) {
		respondErr(w, http.StatusBadRequest, vErr.Error())
		return
	}

	// Delivery and any other failure: surface the message — it carries the
	// provider's status and response detail for operator diagnosis.
	s.logger.Error("quote submission failed",
		"error", err,
		logField(r),
	)
	respondErr(w, http.StatusInternalServerError, err.Error())
}
