// internal/app/features/groups/list.go
package groups

import (
	"context"
	"net/http"

	groupprojectstore "github.com/LAULAUtonton/GLOBALISSUES/internal/app/store/groupprojects"
	"github.com/LAULAUtonton/GLOBALISSUES/internal/app/system/httpjson"
	"github.com/LAULAUtonton/GLOBALISSUES/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleListGroups processes GET /groups. Returns up to 100 records in
// store-native order; the classroom deployments this serves never get
// near that bound.
func (h *Handler) HandleListGroups(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := groupprojectstore.New(h.DB)
	projects, err := store.List(ctx, groupprojectstore.DefaultListLimit)
	if err != nil {
		h.Log.Error("list groups", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred")
		return
	}

	httpjson.Write(w, http.StatusOK, projects)
}
