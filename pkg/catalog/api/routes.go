package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) SetupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(DefaultPageTimeout))
		r.Get("/", h.CatalogPage)
		r.Post("/comics", h.SubmitComic)
		r.Post("/comics/{id}/delete", h.DeleteComicForm)
		r.Get("/activity", h.ActivityPage)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(DefaultRequestTimeout))
		r.Get("/healthz", h.Healthz)
		r.Get("/readyz", h.Readyz)
	})

	r.Route("/api/comics", func(r chi.Router) {
		r.Use(middleware.Timeout(DefaultPageTimeout))
		r.Get("/", h.ListComics)
		r.Post("/", h.CreateComic)
		r.Get("/export", h.ExportComics)
		r.Get("/{id}", h.GetComic)
		r.Delete("/{id}", h.DeleteComic)
	})

	r.Route("/api/events", func(r chi.Router) {
		r.Use(middleware.Timeout(DefaultRequestTimeout))
		r.Get("/", h.ListEvents)
		r.Get("/errors", h.GetRecentErrors)
		r.Delete("/", h.CleanupEvents)
	})

	r.Get("/static/*", h.ServeStatic)

	return r
}
