// internal/app/features/sitemap/routes.go
package sitemap

import "github.com/go-chi/chi/v5"

// Routes is mounted at the site root.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/watch-sitemap.xml", h.ServeWatch)
	return r
}
