package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-logr/logr"
	"gopkg.in/yaml.v3"
)

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

func WriteJSONResponse(w http.ResponseWriter, logger logr.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error(err, "failed to encode JSON response")
	}
}

func WriteErrorResponse(w http.ResponseWriter, logger logr.Logger, status int, errorMsg string, message string, details map[string]string) {
	resp := ErrorResponse{
		Error:   errorMsg,
		Message: message,
		Details: details,
	}
	WriteJSONResponse(w, logger, status, resp)
}

func WriteError(w http.ResponseWriter, logger logr.Logger, err error) {
	if err == nil {
		WriteErrorResponse(w, logger, http.StatusInternalServerError, "unknown_error", "An unknown error occurred", nil)
		return
	}

	WriteErrorResponse(w, logger, httpStatus(err), extractErrorCode(err), err.Error(), nil)
}

func WriteYAMLResponse(w http.ResponseWriter, logger logr.Logger, data interface{}) {
	out, err := yaml.Marshal(data)
	if err != nil {
		logger.Error(err, "failed to encode YAML response")
		WriteErrorResponse(w, logger, http.StatusInternalServerError, "encoding_failed", "Failed to encode YAML", nil)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(out); err != nil {
		logger.Error(err, "failed to write YAML response")
	}
}
