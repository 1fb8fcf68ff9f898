// internal/app/features/groups/view.go
package groups

import (
	"context"
	"net/http"

	groupprojectstore "github.com/LAULAUtonton/GLOBALISSUES/internal/app/store/groupprojects"
	"github.com/LAULAUtonton/GLOBALISSUES/internal/app/system/httpjson"
	"github.com/LAULAUtonton/GLOBALISSUES/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleGetGroup processes GET /groups/{groupID}.
func (h *Handler) HandleGetGroup(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "groupID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := groupprojectstore.New(h.DB)
	project, err := store.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		httpjson.Error(w, http.StatusNotFound, "Group not found")
		return
	}
	if err != nil {
		h.Log.Error("get group", zap.String("id", id), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred")
		return
	}

	httpjson.Write(w, http.StatusOK, project)
}
