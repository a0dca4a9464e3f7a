// Package httptransport is the thin HTTP layer over the rule and audit
// engines. Handlers delegate to domain packages without embedding business
// logic so transport concerns remain isolated.
package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"trastienda/internal/audit"
	"trastienda/internal/platform/metrics"
)

// Handler carries the wired engines plus transport-only concerns (request
// DTO validation, metrics, logging).
type Handler struct {
	recorder *audit.Recorder
	reader   *audit.Reader
	metrics  *metrics.Metrics
	log      *zap.Logger
	validate *validator.Validate
}

func NewHandler(recorder *audit.Recorder, reader *audit.Reader, m *metrics.Metrics, log *zap.Logger) *Handler {
	return &Handler{
		recorder: recorder,
		reader:   reader,
		metrics:  m,
		log:      log,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError centralizes the JSON error envelope so every handler reports
// failures the same way.
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

func (h *Handler) writeStoreError(w http.ResponseWriter, err error, code string) {
	var persistErr *audit.PersistenceError
	if errors.As(err, &persistErr) {
		h.log.Error("audit store unavailable", zap.Error(err))
		writeError(w, http.StatusBadGateway, code)
		return
	}
	h.log.Error("unexpected audit failure", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal")
}
