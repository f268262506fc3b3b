// internal/app/features/media/routes.go
package media

import "github.com/go-chi/chi/v5"

// MediaRoutes is mounted under /api/media.
func MediaRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{id}", h.ServeMedia)
	return r
}

// DocumentRoutes is mounted under /api/documents.
func DocumentRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListDocuments)
	r.Get("/{id}", h.ServeDocument)
	return r
}
