// Package api implements the HTTP layer for the handyman site backend.
// Handlers are methods on *Server. Each handler file is responsible for one
// resource group and only imports the dependencies it actually uses.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tylerdean1/devons-handyman-backend/internal/cart"
	"github.com/tylerdean1/devons-handyman-backend/internal/quote"
)

// Config holds values the HTTP layer needs from the environment.
type Config struct {
	// Env is "production", "staging", or "development".
	Env string
}

// Server holds all shared dependencies. Each handler file attaches methods to
// this type and uses only the fields it needs.
type Server struct {
	// quotes runs the submission pipeline: normalize, render, deliver.
	quotes *quote.Service

	// carts is the in-memory cart session store.
	carts *cart.Store

	cfg    Config
	logger *slog.Logger
}

// NewServer constructs the Server and wires the chi router. The returned
// http.Handler is ready to pass to http.ListenAndServe.
func NewServer(quotes *quote.Service, carts *cart.Store, cfg Config, logger *slog.Logger) http.Handler {
	s := &Server{
		quotes: quotes,
		carts:  carts,
		cfg:    cfg,
		logger: logger,
	}
	return s.routes()
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	// ── Global middleware ─────────────────────────────────────────────────────
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(s.corsMiddleware)
	r.Use(middleware.Timeout(30 * time.Second))

	// The original endpoint answered unsupported methods with a JSON error
	// body; keep that contract for the whole API.
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondErr(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	// ── Health ────────────────────────────────────────────────────────────────
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// ── API ───────────────────────────────────────────────────────────────────
	r.Route("/api", func(r chi.Router) {

		// Quote submission — the pipeline does its own validation.
		r.Post("/quote", s.handleSendQuote)

		// Catalog — read-only static data.
		r.Get("/services", s.handleListServices)
		r.Get("/services/{serviceID}", s.handleGetService)

		// Carts — anonymous, token in the URL.
		r.Post("/cart", s.handleCreateCart)
		r.Route("/cart/{cartID}", func(r chi.Router) {
			r.Get("/", s.handleGetCart)
			r.Delete("/", s.handleClearCart)
			r.Post("/items", s.handleAddItem)
			r.Put("/items/{serviceID}", s.handleSetQuantity)
			r.Delete("/items/{serviceID}", s.handleRemoveItem)
			r.Post("/quote", s.handleSubmitCartQuote)
		})
	})

	return r
}
