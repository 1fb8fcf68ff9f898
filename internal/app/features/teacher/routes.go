// internal/app/features/teacher/routes.go
package teacher

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the teacher gate; mounted under /teacher.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/login", h.HandleLogin)
	return r
}
