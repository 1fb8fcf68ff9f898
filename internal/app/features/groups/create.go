// internal/app/features/groups/create.go
package groups

import (
	"context"
	"net/http"
	"strings"

	groupprojectstore "github.com/LAULAUtonton/GLOBALISSUES/internal/app/store/groupprojects"
	"github.com/LAULAUtonton/GLOBALISSUES/internal/app/system/httpjson"
	"github.com/LAULAUtonton/GLOBALISSUES/internal/app/system/timeouts"
	"github.com/LAULAUtonton/GLOBALISSUES/internal/domain/models"
	"go.uber.org/zap"
)

// HandleCreateGroup processes POST /groups. The created record comes back
// in full, with every day-stage at its empty default.
func (h *Handler) HandleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.GroupName) == "" {
		httpjson.Error(w, http.StatusBadRequest, "group_name is required")
		return
	}
	// members must be present; an empty list is a valid group-of-nobody.
	if req.Members == nil {
		httpjson.Error(w, http.StatusBadRequest, "members is required")
		return
	}
	if req.ProjectType != "" && !models.ValidProjectType(req.ProjectType) {
		httpjson.Error(w, http.StatusBadRequest, "project_type must be 'podcast' or 'vlog'")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := groupprojectstore.New(h.DB)
	created, err := store.Create(ctx, models.GroupProject{
		GroupName:   req.GroupName,
		Members:     req.Members,
		ProjectType: req.ProjectType,
	})
	if err == groupprojectstore.ErrDuplicateGroupName {
		httpjson.Error(w, http.StatusBadRequest, "Group name already exists")
		return
	}
	if err != nil {
		h.Log.Error("create group", zap.String("group_name", req.GroupName), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred")
		return
	}

	h.Log.Info("group created",
		zap.String("id", created.ID),
		zap.String("group_name", created.GroupName),
		zap.String("project_type", created.ProjectType))
	httpjson.Write(w, http.StatusOK, created)
}
