package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/garunski/comic-catalog/pkg/catalog/events"
)

func TestListEvents(t *testing.T) {
	env := newTestEnv(t)
	seedComics(t, env, watchmen, saga)
	if _, err := env.store.Delete("a"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	router := env.handler.SetupRoutes()

	tests := []struct {
		name      string
		query     string
		wantCount int
	}{
		{name: "all", query: "", wantCount: 3},
		{name: "by comic", query: "?comicId=a", wantCount: 2},
		{name: "by type", query: "?type=deleted", wantCount: 1},
		{name: "limit", query: "?limit=1", wantCount: 1},
		{name: "offset past end", query: "?offset=10", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events"+tt.query, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("ListEvents() status code = %v, want %v", w.Code, http.StatusOK)
			}

			var got []events.Event
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("failed to decode events: %v", err)
			}
			if len(got) != tt.wantCount {
				t.Errorf("ListEvents() returned %d events, want %d", len(got), tt.wantCount)
			}
		})
	}
}

func TestListEvents_BadQuery(t *testing.T) {
	env := newTestEnv(t)
	router := env.handler.SetupRoutes()

	for _, query := range []string{"?type=bogus", "?limit=0", "?since=yesterday", "?offset=-1"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events"+query, nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("ListEvents(%s) status code = %v, want %v", query, w.Code, http.StatusBadRequest)
		}
	}
}

func TestEvents_NoEventStore(t *testing.T) {
	env := newTestEnv(t, WithNilEventStore())
	router := env.handler.SetupRoutes()

	requests := []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/events", nil),
		httptest.NewRequest(http.MethodGet, "/api/events/errors", nil),
		httptest.NewRequest(http.MethodDelete, "/api/events", nil),
	}
	for _, req := range requests {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("%s %s status code = %v, want %v", req.Method, req.URL.Path, w.Code, http.StatusServiceUnavailable)
		}
	}
}

func TestGetRecentErrors(t *testing.T) {
	env := newTestEnv(t)
	if err := env.eventStore.StoreEvent(events.Error("a", "add", "failed to persist catalog", nil)); err != nil {
		t.Fatalf("StoreEvent() error = %v", err)
	}
	seedComics(t, env, watchmen)

	w := httptest.NewRecorder()
	env.handler.SetupRoutes().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events/errors", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GetRecentErrors() status code = %v, want %v", w.Code, http.StatusOK)
	}

	var got []events.Event
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode events: %v", err)
	}
	if len(got) != 1 || got[0].Type != events.EventTypeError {
		t.Errorf("GetRecentErrors() = %+v", got)
	}
}

func TestCleanupEvents(t *testing.T) {
	env := newTestEnv(t)
	seedComics(t, env, watchmen)
	router := env.handler.SetupRoutes()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/events", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("CleanupEvents() status code = %v, want %v", w.Code, http.StatusOK)
	}
	remaining, err := env.eventStore.ListEvents(events.EventFilters{})
	if err != nil {
		t.Fatalf("ListEvents() error = %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("retention cleanup removed fresh events: %d left", len(remaining))
	}

	before := url.QueryEscape(time.Now().Add(time.Hour).Format(time.RFC3339))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/events?before="+before, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("CleanupEvents(before) status code = %v, want %v", w.Code, http.StatusOK)
	}

	var resp CleanupResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Deleted == 0 {
		t.Error("CleanupEvents(before) reported nothing deleted")
	}

	remaining, err = env.eventStore.ListEvents(events.EventFilters{})
	if err != nil {
		t.Fatalf("ListEvents() error = %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("%d events left after cleanup", len(remaining))
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/events?before=soon", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("CleanupEvents(bad before) status code = %v, want %v", w.Code, http.StatusBadRequest)
	}
}
