// internal/app/features/watch/routes.go
package watch

import "github.com/go-chi/chi/v5"

// Routes is mounted under /api/watch.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{slug}", h.ServeWatch)
	return r
}
