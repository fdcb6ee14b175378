package api

import (
	"fmt"
	"net/http"
	"time"

	apperrors "github.com/garunski/comic-catalog/pkg/catalog/errors"
)

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	if h.eventStore == nil {
		WriteError(w, h.logger, fmt.Errorf("%w: event store not available", apperrors.ErrEventStore))
		return
	}

	filters, err := ParseQueryParams(r)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	eventList, err := h.eventStore.ListEvents(filters)
	if err != nil {
		h.logger.Error(err, "failed to list events")
		WriteError(w, h.logger, err)
		return
	}

	WriteJSONResponse(w, h.logger, http.StatusOK, eventList)
}

func (h *Handler) GetRecentErrors(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r.URL.Query().Get("limit"), 50)
	if err != nil {
		WriteError(w, h.logger, err)
		return
	}

	if h.eventStore == nil {
		WriteError(w, h.logger, fmt.Errorf("%w: event store not available", apperrors.ErrEventStore))
		return
	}

	eventList, err := h.eventStore.GetRecentErrors(limit)
	if err != nil {
		h.logger.Error(err, "failed to get recent errors")
		WriteError(w, h.logger, err)
		return
	}

	WriteJSONResponse(w, h.logger, http.StatusOK, eventList)
}

// CleanupEvents deletes events older than ?before= (RFC3339), or older than
// the retention window when the parameter is absent.
func (h *Handler) CleanupEvents(w http.ResponseWriter, r *http.Request) {
	before := time.Now().Add(-h.retention)
	if beforeStr := r.URL.Query().Get("before"); beforeStr != "" {
		parsed, err := time.Parse(time.RFC3339, beforeStr)
		if err != nil {
			WriteError(w, h.logger, fmt.Errorf("%w: invalid before parameter format (use RFC3339): %w", apperrors.ErrInvalid, err))
			return
		}
		before = parsed
	}

	if h.eventStore == nil {
		WriteError(w, h.logger, fmt.Errorf("%w: event store not available", apperrors.ErrEventStore))
		return
	}

	deleted, err := h.eventStore.CleanupOldEvents(before)
	if err != nil {
		h.logger.Error(err, "failed to cleanup events")
		WriteError(w, h.logger, err)
		return
	}

	WriteJSONResponse(w, h.logger, http.StatusOK, CleanupResponse{
		Message: "Events cleaned up successfully",
		Deleted: deleted,
		Before:  before,
	})
}
