package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"trastienda/pkg/platform/middleware/metadata"
)

// NewRouter wires all endpoints. Extra middlewares (actor extraction) are
// supplied by the caller so the router stays wiring-free.
func NewRouter(h *Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(metadata.ClientMetadata)
	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/fields/validate", h.handleValidateField)
	r.Post("/fields/filter", h.handleFilterField)

	r.Route("/entities/{entityType}/{entityID}", func(r chi.Router) {
		r.Get("/history", h.handleHistory)
		r.Get("/last-update", h.handleLastUpdate)
		r.Post("/audit", h.handleRecordChange)
	})

	return r
}
