// internal/app/features/articles/routes.go
package articles

import "github.com/go-chi/chi/v5"

// PostRoutes is mounted under /api/posts.
func PostRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServePostList)
	r.Get("/{slug}", h.ServePost)
	return r
}

// ProjectRoutes is mounted under /api/projects.
func ProjectRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeProjectList)
	r.Get("/{slug}", h.ServeProject)
	return r
}
