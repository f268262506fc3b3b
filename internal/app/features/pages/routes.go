// internal/app/features/pages/routes.go
package pages

import "github.com/go-chi/chi/v5"

// Routes returns the page API router. Mount it at /api/pages.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{slug}", h.ServePage)
	return r
}
