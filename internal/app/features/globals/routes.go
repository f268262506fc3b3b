// internal/app/features/globals/routes.go
package globals

import "github.com/go-chi/chi/v5"

// Routes is mounted under /api/globals.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/header", h.ServeHeader)
	r.Get("/footer", h.ServeFooter)
	return r
}
