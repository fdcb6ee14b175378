package api

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-logr/logr"

	"github.com/garunski/comic-catalog/pkg/assets"
	apperrors "github.com/garunski/comic-catalog/pkg/catalog/errors"
	"github.com/garunski/comic-catalog/pkg/catalog/events"
	"github.com/garunski/comic-catalog/pkg/catalog/form"
	"github.com/garunski/comic-catalog/pkg/catalog/store"
)

// Pinger reports storage liveness for /readyz.
type Pinger interface {
	Ping() error
}

type Handler struct {
	logger      logr.Logger
	appName     string
	version     string
	templates   *template.Template
	store       store.ComicStore
	eventStore  events.EventStorage
	pinger      Pinger
	retention   time.Duration
	formOptions []form.Option
}

type HandlerOption func(*Handler)

func WithPinger(p Pinger) HandlerOption {
	return func(h *Handler) {
		h.pinger = p
	}
}

// WithRetention sets the default cutoff age for DELETE /api/events.
func WithRetention(d time.Duration) HandlerOption {
	return func(h *Handler) {
		h.retention = d
	}
}

func WithFormOptions(opts ...form.Option) HandlerOption {
	return func(h *Handler) {
		h.formOptions = append(h.formOptions, opts...)
	}
}

func NewHandler(catalog store.ComicStore, eventStore events.EventStorage, logger logr.Logger, appName, version string, customTemplateFS fs.FS, opts ...HandlerOption) (*Handler, error) {
	tmpl, err := loadTemplates(customTemplateFS)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	if customTemplateFS != nil {
		if files, err := assets.ListFiles(customTemplateFS, "templates"); err == nil {
			logger.Info("Using custom templates", "files", files)
		}
	}

	if appName == "" {
		appName = "Comic Book Catalog"
	}

	h := &Handler{
		logger:     logger,
		appName:    appName,
		version:    version,
		templates:  tmpl,
		store:      catalog,
		eventStore: eventStore,
		retention:  7 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(h)
	}

	return h, nil
}

func (h *Handler) newForm() *form.Form {
	return form.New(h.formOptions...)
}

// renderPage renders into a buffer first so a template failure can still
// produce an error response.
func (h *Handler) renderPage(w http.ResponseWriter, name string, data map[string]interface{}) {
	templateData := make(map[string]interface{}, len(data)+3)
	for k, v := range data {
		templateData[k] = v
	}
	templateData["AppName"] = h.appName
	templateData["AppVersion"] = h.version
	templateData["CacheBust"] = time.Now().Unix()

	html, err := renderTemplate(h.templates, name, templateData)
	if err != nil {
		h.logger.Error(err, "failed to render template", "template", name)
		WriteErrorResponse(w, h.logger, http.StatusInternalServerError, "template_execution_failed", "Failed to execute template", nil)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, html); err != nil {
		h.logger.V(1).Info("failed to write page", "template", name, "error", err)
	}
}

func (h *Handler) parseJSONRequest(r *http.Request, v interface{}) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil {
		if syntaxErr, ok := err.(*json.SyntaxError); ok {
			return fmt.Errorf("%w: invalid request body: JSON syntax error at position %d: %w", apperrors.ErrInvalidRequest, syntaxErr.Offset, syntaxErr)
		}
		if unmarshalTypeErr, ok := err.(*json.UnmarshalTypeError); ok {
			return fmt.Errorf("%w: invalid request body: JSON type error for field %s: expected %s, got %s", apperrors.ErrInvalidRequest, unmarshalTypeErr.Field, unmarshalTypeErr.Type, unmarshalTypeErr.Value)
		}
		return fmt.Errorf("%w: invalid request body: %w", apperrors.ErrInvalidRequest, err)
	}
	return nil
}
