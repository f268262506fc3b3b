// internal/app/features/redirects/routes.go
package redirects

import "github.com/go-chi/chi/v5"

// Routes is mounted under /api/redirects.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeLookup)
	return r
}
