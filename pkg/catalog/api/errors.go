package api

import (
	"errors"
	"net/http"

	apperrors "github.com/garunski/comic-catalog/pkg/catalog/errors"
)

func httpStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, apperrors.ErrInvalid) || errors.Is(err, apperrors.ErrInvalidRequest) ||
		errors.Is(err, apperrors.ErrIncompleteForm) || errors.Is(err, apperrors.ErrInvalidImage) {
		return http.StatusBadRequest
	}
	if errors.Is(err, apperrors.ErrStorage) || errors.Is(err, apperrors.ErrCorruptData) {
		return http.StatusInternalServerError
	}
	if errors.Is(err, apperrors.ErrEventStore) {
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}

func extractErrorCode(err error) string {
	if err == nil {
		return "unknown_error"
	}

	if errors.Is(err, apperrors.ErrNotFound) {
		return "not_found"
	}
	if errors.Is(err, apperrors.ErrIncompleteForm) {
		return "incomplete_form"
	}
	if errors.Is(err, apperrors.ErrInvalidImage) {
		return "invalid_image"
	}
	if errors.Is(err, apperrors.ErrInvalidRequest) {
		return "invalid_request"
	}
	if errors.Is(err, apperrors.ErrInvalid) {
		return "validation_error"
	}
	if errors.Is(err, apperrors.ErrCorruptData) {
		return "corrupt_data"
	}
	if errors.Is(err, apperrors.ErrStorage) {
		return "storage_error"
	}
	if errors.Is(err, apperrors.ErrEventStore) {
		return "event_store_unavailable"
	}

	return "internal_error"
}
