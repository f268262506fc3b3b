// internal/app/features/fileproxy/routes.go
package fileproxy

import "github.com/go-chi/chi/v5"

// Routes serves stored files. Mounted under /api/media/file,
// /api/documents/file and /media.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{filename}", h.ServeFile)
	r.Head("/{filename}", h.ServeFile)
	return r
}
