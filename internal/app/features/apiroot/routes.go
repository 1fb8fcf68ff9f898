// internal/app/features/apiroot/routes.go
package apiroot

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter that serves the API root message.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve)
	return r
}
