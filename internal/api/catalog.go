package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tylerdean1/devons-handyman-backend/internal/catalog"
)

// ─── GET /api/services ────────────────────────────────────────────────────────

type listServicesResponse struct {
	Services   []catalog.Service  `json:"services"`
	Categories []catalog.Category `json:"categories"`
}

// handleListServices returns the catalog, optionally filtered by ?category=.
func (s *Server) handleListServices(w http.ResponseWriter, r *http.Request) {
	services := catalog.All()

	if c := r.URL.Query().Get("category"); c != "" {
		cat := catalog.Category(c)
		if !knownCategory(cat) {
			respondErr(w, http.StatusBadRequest, "unknown category")
			return
		}
		services = catalog.ByCategory(cat)
	}

	respond(w, http.StatusOK, listServicesResponse{
		Services:   services,
		Categories: catalog.Categories(),
	})
}

// ─── GET /api/services/{serviceID} ────────────────────────────────────────────

func (s *Server) handleGetService(w http.ResponseWriter, r *http.Request) {
	svc, ok := catalog.ByID(chi.URLParam(r, "serviceID"))
	if !ok {
		respondErr(w, http.StatusNotFound, "service not found")
		return
	}
	respond(w, http.StatusOK, svc)
}

func knownCategory(c catalog.Category) bool {
	for _, known := range catalog.Categories() {
		if c == known {
			return true
		}
	}
	return false
}
