package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/garunski/comic-catalog/pkg/catalog/errors"
	"github.com/garunski/comic-catalog/pkg/catalog/events"
	"github.com/garunski/comic-catalog/pkg/catalog/form"
)

func (h *Handler) CatalogPage(w http.ResponseWriter, r *http.Request) {
	comics := h.store.List()

	data := map[string]interface{}{
		"Comics": comics,
		"Count":  len(comics),
	}

	h.renderPage(w, "catalog-page", data)
}

// SubmitComic handles the "Add Comic" form. An incomplete form, or a cover
// that is not an image, adds nothing and shows no message: the browser is
// sent back to the catalog either way.
func (h *Handler) SubmitComic(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		WriteError(w, h.logger, fmt.Errorf("%w: failed to parse form: %w", apperrors.ErrInvalidRequest, err))
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	f := h.newForm()
	f.SetTitle(r.FormValue(fieldTitle))
	f.SetIssue(r.FormValue(fieldIssue))
	f.SetPublisher(r.FormValue(fieldPublisher))

	if err := loadUploadedImage(r, f); err != nil {
		h.logger.V(1).Info("cover upload ignored", "error", err)
	}

	record, ok, err := f.Submit(h.store)
	if err != nil {
		h.logger.Error(err, "failed to add comic")
		WriteError(w, h.logger, err)
		return
	}
	if ok {
		h.logger.Info("Added comic", "id", record.ID, "title", record.Title, "issue", record.Issue)
	} else {
		h.logger.V(1).Info("incomplete comic submission ignored")
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func loadUploadedImage(r *http.Request, f *form.Form) error {
	if r.MultipartForm == nil {
		return nil
	}
	file, header, err := r.FormFile(fieldImage)
	if errors.Is(err, http.ErrMissingFile) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open uploaded image: %w", err)
	}
	defer file.Close()

	return f.LoadImage(file, header.Header.Get("Content-Type"))
}

// DeleteComicForm removes one card. Unknown ids are ignored.
func (h *Handler) DeleteComicForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	removed, err := h.store.Delete(id)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		h.logger.V(1).Info("delete of unknown comic ignored", "id", id)
	case err != nil:
		h.logger.Error(err, "failed to delete comic", "id", id)
		WriteError(w, h.logger, err)
		return
	default:
		h.logger.Info("Deleted comic", "id", id, "title", removed.Title)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) ActivityPage(w http.ResponseWriter, r *http.Request) {
	var eventList []events.Event
	available := h.eventStore != nil
	if available {
		var err error
		eventList, err = h.eventStore.ListEvents(events.EventFilters{Limit: 100})
		if err != nil {
			h.logger.Error(err, "failed to list events for activity page")
			available = false
		}
	}

	h.renderPage(w, "activity-page", map[string]interface{}{
		"Events":    eventList,
		"Available": available,
	})
}

// ServeStatic serves static files from the embedded filesystem
func (h *Handler) ServeStatic(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/static/")
	if name == "" || strings.Contains(name, "..") {
		http.NotFound(w, r)
		return
	}

	file, err := templateFiles.Open(path.Join("templates/static", name))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer file.Close()

	switch path.Ext(name) {
	case ".js":
		w.Header().Set("Content-Type", "application/javascript")
	case ".css":
		w.Header().Set("Content-Type", "text/css")
	default:
		w.Header().Set("Content-Type", "application/octet-stream")
	}
	w.Header().Set("Cache-Control", "public, max-age=3600")

	if _, err := io.Copy(w, file); err != nil {
		h.logger.V(1).Info("failed to serve static file", "path", name, "error", err)
	}
}
