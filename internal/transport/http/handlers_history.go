package httptransport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) entityParams(w http.ResponseWriter, r *http.Request) (string, int64, bool) {
	entityType := chi.URLParam(r, "entityType")
	entityID, err := strconv.ParseInt(chi.URLParam(r, "entityID"), 10, 64)
	if err != nil || entityType == "" {
		writeError(w, http.StatusBadRequest, "invalid_entity")
		return "", 0, false
	}
	return entityType, entityID, true
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	entityType, entityID, ok := h.entityParams(w, r)
	if !ok {
		return
	}

	records, err := h.reader.History(r.Context(), entityType, entityID)
	if err != nil {
		h.writeStoreError(w, err, "could_not_load_change_history")
		return
	}
	h.metrics.HistoryRequests.Inc()
	writeJSON(w, http.StatusOK, toHistoryResponse(records))
}

func (h *Handler) handleLastUpdate(w http.ResponseWriter, r *http.Request) {
	entityType, entityID, ok := h.entityParams(w, r)
	if !ok {
		return
	}

	last, err := h.reader.LastUpdate(r.Context(), entityType, entityID)
	if err != nil {
		h.writeStoreError(w, err, "could_not_load_change_history")
		return
	}
	// A null body means the entity has no trail yet.
	writeJSON(w, http.StatusOK, last)
}

// handleRecordChange is called by the persistence layer as part of the same
// logical operation that performs the mutation. A store failure surfaces as
// 502 so the caller can decide whether to roll back.
func (h *Handler) handleRecordChange(w http.ResponseWriter, r *http.Request) {
	entityType, entityID, ok := h.entityParams(w, r)
	if !ok {
		return
	}

	var req RecordChangeRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}
	if req.Before == nil && req.After == nil {
		writeError(w, http.StatusBadRequest, "missing_snapshots")
		return
	}

	record, err := h.recorder.Record(r.Context(), entityType, entityID, req.Before, req.After)
	if err != nil {
		h.writeStoreError(w, err, "could_not_save_change_history")
		return
	}
	writeJSON(w, http.StatusCreated, record)
}
