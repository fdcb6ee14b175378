package api

import (
	"net/http"
	"strconv"
	"time"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:    "healthy",
		Version:   h.version,
		Timestamp: time.Now(),
	}

	WriteJSONResponse(w, h.logger, http.StatusOK, status)
}

func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:     "healthy",
		Version:    h.version,
		Timestamp:  time.Now(),
		Components: make(map[string]ComponentStatus),
	}

	if h.store != nil {
		status.Components["catalog"] = ComponentStatus{
			Status:  "healthy",
			Message: strconv.Itoa(h.store.Len()) + " comics",
		}
	} else {
		status.Components["catalog"] = ComponentStatus{
			Status:  "unhealthy",
			Message: "Store not initialized",
		}
		status.Status = "unhealthy"
	}

	if h.pinger != nil {
		if err := h.pinger.Ping(); err != nil {
			status.Components["database"] = ComponentStatus{
				Status:  "unhealthy",
				Message: err.Error(),
			}
			status.Status = "unhealthy"
		} else {
			status.Components["database"] = ComponentStatus{Status: "healthy"}
		}
	}

	if h.eventStore != nil {
		if _, err := h.eventStore.GetRecentErrors(1); err != nil {
			status.Components["eventStore"] = ComponentStatus{
				Status:  "unavailable",
				Message: err.Error(),
			}
		} else {
			status.Components["eventStore"] = ComponentStatus{Status: "available"}
		}
	} else {
		status.Components["eventStore"] = ComponentStatus{
			Status:  "unavailable",
			Message: "Event store not initialized",
		}
	}

	statusCode := http.StatusOK
	if status.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	WriteJSONResponse(w, h.logger, statusCode, status)
}
