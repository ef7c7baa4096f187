package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tylerdean1/devons-handyman-backend/internal/cart"
	"github.com/tylerdean1/devons-handyman-backend/internal/catalog"
	"github.com/tylerdean1/devons-handyman-backend/internal/quote"
)

// cartResponse is the shared shape for every cart mutation and read.
type cartResponse struct {
	CartID string          `json:"cart_id"`
	Items  []cart.LineItem `json:"items"`
	Count  int             `json:"count"`
}

func newCartResponse(id string, items []cart.LineItem) cartResponse {
	count := 0
	for _, it := range items {
		count += it.Quantity
	}
	if items == nil {
		items = []cart.LineItem{}
	}
	return cartResponse{CartID: id, Items: items, Count: count}
}

// ─── POST /api/cart ───────────────────────────────────────────────────────────

// handleCreateCart allocates an empty cart. The browser stores the returned
// id in sessionStorage and scopes every later cart call with it.
func (s *Server) handleCreateCart(w http.ResponseWriter, r *http.Request) {
	id := s.carts.Create()
	respond(w, http.StatusCreated, newCartResponse(id, nil))
}

// ─── GET /api/cart/{cartID} ───────────────────────────────────────────────────

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "cartID")
	items, err := s.carts.Get(id)
	if err != nil {
		s.respondCartErr(w, r, err)
		return
	}
	respond(w, http.StatusOK, newCartResponse(id, items))
}

// ─── POST /api/cart/{cartID}/items ────────────────────────────────────────────

type addItemRequest struct {
	ServiceID string `json:"service_id"`
	Quantity  int    `json:"quantity"`
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "cartID")

	var req addItemRequest
	if !decode(w, r, &req) {
		return
	}

	svc, ok := catalog.ByID(req.ServiceID)
	if !ok {
		respondErr(w, http.StatusBadRequest, "unknown service_id")
		return
	}

	items, err := s.carts.Update(id, func(c *cart.Cart) error {
		c.Add(svc, req.Quantity)
		return nil
	})
	if err != nil {
		s.respondCartErr(w, r, err)
		return
	}
	respond(w, http.StatusOK, newCartResponse(id, items))
}

// ─── PUT /api/cart/{cartID}/items/{serviceID} ─────────────────────────────────

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

var errNotInCart = errors.New("service not in cart")

func (s *Server) handleSetQuantity(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "cartID")
	serviceID := chi.URLParam(r, "serviceID")

	var req setQuantityRequest
	if !decode(w, r, &req) {
		return
	}

	items, err := s.carts.Update(id, func(c *cart.Cart) error {
		if !c.SetQuantity(serviceID, req.Quantity) {
			return errNotInCart
		}
		return nil
	})
	if errors.Is(err, errNotInCart) {
		respondErr(w, http.StatusNotFound, "service not in cart")
		return
	}
	if err != nil {
		s.respondCartErr(w, r, err)
		return
	}
	respond(w, http.StatusOK, newCartResponse(id, items))
}

// ─── DELETE /api/cart/{cartID}/items/{serviceID} ──────────────────────────────

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "cartID")
	serviceID := chi.URLParam(r, "serviceID")

	items, err := s.carts.Update(id, func(c *cart.Cart) error {
		c.Remove(serviceID)
		return nil
	})
	if err != nil {
		s.respondCartErr(w, r, err)
		return
	}
	respond(w, http.StatusOK, newCartResponse(id, items))
}

// ─── DELETE /api/cart/{cartID} ────────────────────────────────────────────────

// handleClearCart empties the cart but keeps the id valid.
func (s *Server) handleClearCart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "cartID")

	items, err := s.carts.Update(id, func(c *cart.Cart) error {
		c.Clear()
		return nil
	})
	if err != nil {
		s.respondCartErr(w, r, err)
		return
	}
	respond(w, http.StatusOK, newCartResponse(id, items))
}

// ─── POST /api/cart/{cartID}/quote ────────────────────────────────────────────

type cartQuoteRequest struct {
	CustomerEmail   string `json:"customerEmail"`
	CustomerName    string `json:"customerName"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	PreferredDate   string `json:"preferredDate"`
	PreferredTime   string `json:"preferredTime"`
	AdditionalNotes string `json:"additionalNotes"`
}

// handleSubmitCartQuote builds the quote body from the cart contents and the
// form fields, runs it through the same pipeline as POST /api/quote, and
// clears the cart on success.
func (s *Server) handleSubmitCartQuote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "cartID")

	var req cartQuoteRequest
	if !decode(w, r, &req) {
		return
	}

	items, err := s.carts.Get(id)
	if err != nil {
		s.respondCartErr(w, r, err)
		return
	}

	body := quote.BuildBody(quote.Form{
		Phone:           req.Phone,
		Address:         req.Address,
		PreferredDate:   req.PreferredDate,
		PreferredTime:   req.PreferredTime,
		AdditionalNotes: req.AdditionalNotes,
	}, items)

	raw, err := json.Marshal(buildSubmission(req, body, items))
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("marshal submission: %w", err))
		return
	}

	if err := s.quotes.Submit(r.Context(), raw); err != nil {
		s.respondQuoteErr(w, r, err)
		return
	}

	// Mirror the browser flow: a submitted cart starts over.
	if _, err := s.carts.Update(id, func(c *cart.Cart) error {
		c.Clear()
		return nil
	}); err != nil {
		s.logger.Warn("clear cart after submission failed",
			"cart_id", id,
			"error", err,
			logField(r),
		)
	}

	respond(w, http.StatusOK, map[string]bool{"ok": true})
}

// buildSubmission assembles the pipeline payload: top-level contact fields,
// the preformatted quote body, and the structured meta side channel that
// appears in the owner email only.
func buildSubmission(req cartQuoteRequest, body string, items []cart.LineItem) map[string]any {
	meta := map[string]any{}
	if req.Phone != "" {
		meta["phone"] = req.Phone
	}
	if req.Address != "" {
		meta["address"] = req.Address
	}
	if req.PreferredDate != "" {
		meta["preferredDate"] = req.PreferredDate
	}
	if req.PreferredTime != "" {
		meta["preferredTime"] = req.PreferredTime
	}
	if len(items) > 0 {
		lines := make([]map[string]any, 0, len(items))
		for _, it := range items {
			lines = append(lines, map[string]any{
				"id":       it.Service.ID,
				"name":     it.Service.Name,
				"quantity": it.Quantity,
			})
		}
		meta["services"] = lines
	}

	submission := map[string]any{
		"customerEmail": req.CustomerEmail,
		"customerName":  req.CustomerName,
		"quote":         body,
	}
	if len(meta) > 0 {
		submission["meta"] = meta
	}
	return submission
}

// respondCartErr maps store errors onto the HTTP contract.
func (s *Server) respondCartErr(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, cart.ErrNotFound) {
		respondErr(w, http.StatusNotFound, "cart not found")
		return
	}
	s.respondInternalErr(w, r, err)
}
