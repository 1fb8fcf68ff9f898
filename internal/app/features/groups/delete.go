// internal/app/features/groups/delete.go
package groups

import (
	"context"
	"net/http"

	groupprojectstore "github.com/LAULAUtonton/GLOBALISSUES/internal/app/store/groupprojects"
	"github.com/LAULAUtonton/GLOBALISSUES/internal/app/system/httpjson"
	"github.com/LAULAUtonton/GLOBALISSUES/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HandleDeleteGroup processes DELETE /groups/{groupID}. Hard delete, no
// tombstone; the name becomes available again immediately.
func (h *Handler) HandleDeleteGroup(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "groupID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := groupprojectstore.New(h.DB)
	deleted, err := store.Delete(ctx, id)
	if err != nil {
		h.Log.Error("delete group", zap.String("id", id), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred")
		return
	}
	if deleted == 0 {
		httpjson.Error(w, http.StatusNotFound, "Group not found")
		return
	}

	h.Log.Info("group deleted", zap.String("id", id))
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Grupo eliminado"})
}
