package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/garunski/comic-catalog/pkg/catalog/errors"
	"github.com/garunski/comic-catalog/pkg/catalog/events"
)

const maxIDLength = 128

// ValidateComicID checks the shape of an id taken from a URL. Ids are
// opaque; only emptiness, length and path separators are rejected.
func ValidateComicID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: comic id cannot be empty", apperrors.ErrInvalid)
	}
	if len(id) > maxIDLength {
		return fmt.Errorf("%w: comic id must be %d characters or less", apperrors.ErrInvalid, maxIDLength)
	}
	if strings.ContainsAny(id, "/\\") {
		return fmt.Errorf("%w: comic id cannot contain path separators", apperrors.ErrInvalid)
	}
	return nil
}

func ParseQueryParams(r *http.Request) (events.EventFilters, error) {
	return ParseEventQueryParams(r.URL.Query())
}

func ParseEventQueryParams(queryParams url.Values) (events.EventFilters, error) {
	filters := events.EventFilters{}

	if comicID := queryParams.Get("comicId"); comicID != "" {
		if err := ValidateComicID(comicID); err != nil {
			return filters, fmt.Errorf("invalid comicId parameter: %w", err)
		}
		filters.ComicID = comicID
	}

	if typeStr := queryParams.Get("type"); typeStr != "" {
		eventType := events.EventType(typeStr)
		switch eventType {
		case events.EventTypeAdded, events.EventTypeDeleted, events.EventTypeError, events.EventTypeInfo, events.EventTypeWarning:
		default:
			return filters, fmt.Errorf("%w: invalid event type: %s (must be one of: added, deleted, error, info, warning)", apperrors.ErrInvalid, typeStr)
		}
		filters.Type = eventType
	}

	if sinceStr := queryParams.Get("since"); sinceStr != "" {
		t, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			return filters, fmt.Errorf("%w: invalid since parameter format (use RFC3339): %w", apperrors.ErrInvalid, err)
		}
		filters.Since = t
	}

	if untilStr := queryParams.Get("until"); untilStr != "" {
		t, err := time.Parse(time.RFC3339, untilStr)
		if err != nil {
			return filters, fmt.Errorf("%w: invalid until parameter format (use RFC3339): %w", apperrors.ErrInvalid, err)
		}
		filters.Until = t
	}

	limit, err := parseLimit(queryParams.Get("limit"), 0)
	if err != nil {
		return filters, err
	}
	filters.Limit = limit

	if offsetStr := queryParams.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return filters, fmt.Errorf("%w: invalid offset parameter: must be a non-negative integer", apperrors.ErrInvalid)
		}
		filters.Offset = offset
	}

	return filters, nil
}

func parseLimit(limitStr string, fallback int) (int, error) {
	if limitStr == "" {
		return fallback, nil
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return 0, fmt.Errorf("%w: invalid limit parameter: must be a positive integer", apperrors.ErrInvalid)
	}
	if limit > 1000 {
		return 0, fmt.Errorf("%w: limit cannot exceed 1000", apperrors.ErrInvalid)
	}
	return limit, nil
}
