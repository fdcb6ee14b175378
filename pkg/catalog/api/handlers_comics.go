package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/garunski/comic-catalog/pkg/catalog/errors"
)

func (h *Handler) ListComics(w http.ResponseWriter, r *http.Request) {
	WriteJSONResponse(w, h.logger, http.StatusOK, h.store.List())
}

func (h *Handler) GetComic(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := ValidateComicID(id); err != nil {
		WriteError(w, h.logger, err)
		return
	}

	record, ok := h.store.Get(id)
	if !ok {
		WriteError(w, h.logger, fmt.Errorf("%w: comic %s", apperrors.ErrNotFound, id))
		return
	}

	WriteJSONResponse(w, h.logger, http.StatusOK, record)
}

// CreateComic is the JSON counterpart of the catalog form. Unlike the page,
// it reports incomplete input instead of ignoring it.
func (h *Handler) CreateComic(w http.ResponseWriter, r *http.Request) {
	var req CreateComicRequest
	if err := h.parseJSONRequest(r, &req); err != nil {
		WriteError(w, h.logger, err)
		return
	}

	f := h.newForm()
	f.SetTitle(req.Title)
	f.SetIssue(req.Issue)
	f.SetPublisher(req.Publisher)
	if req.ImageURL != "" {
		if err := f.SetImageDataURL(req.ImageURL); err != nil {
			WriteError(w, h.logger, err)
			return
		}
	}

	record, ok, err := f.Submit(h.store)
	if err != nil {
		h.logger.Error(err, "failed to add comic")
		WriteError(w, h.logger, err)
		return
	}
	if !ok {
		WriteError(w, h.logger, fmt.Errorf("%w: title, issue, publisher and imageUrl are required", apperrors.ErrIncompleteForm))
		return
	}

	h.logger.Info("Added comic", "id", record.ID, "title", record.Title, "issue", record.Issue)
	WriteJSONResponse(w, h.logger, http.StatusCreated, record)
}

func (h *Handler) DeleteComic(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := ValidateComicID(id); err != nil {
		WriteError(w, h.logger, err)
		return
	}

	if _, err := h.store.Delete(id); err != nil {
		WriteError(w, h.logger, err)
		return
	}

	h.logger.Info("Deleted comic", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

// ExportComics dumps the collection as YAML in catalog order.
func (h *Handler) ExportComics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Disposition", `attachment; filename="comics.yaml"`)
	WriteYAMLResponse(w, h.logger, h.store.List())
}
