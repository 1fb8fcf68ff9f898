// internal/app/features/apiroot/handler.go
package apiroot

import (
	"net/http"

	"github.com/LAULAUtonton/GLOBALISSUES/internal/app/system/httpjson"
)

// Handler serves the static informational message at the API root.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Serve handles GET /api/ with a static identification message so that
// probes and curious browsers get something other than a 404.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Podcast Journal API"})
}
