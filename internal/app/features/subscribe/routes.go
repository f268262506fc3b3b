// internal/app/features/subscribe/routes.go
package subscribe

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Subscribe)
	return r
}
