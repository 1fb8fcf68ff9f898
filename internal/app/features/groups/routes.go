// internal/app/features/groups/routes.go
package groups

import (
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// LIST
	r.Get("/", h.HandleListGroups)

	// CREATE
	r.Post("/", h.HandleCreateGroup)

	// VIEW
	r.Get("/{groupID}", h.HandleGetGroup)

	// DAY-STAGE UPDATE
	r.Put("/{groupID}/day", h.HandleUpdateDayStage)

	// DELETE
	r.Delete("/{groupID}", h.HandleDeleteGroup)

	return r
}
