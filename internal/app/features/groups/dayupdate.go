// internal/app/features/groups/dayupdate.go
package groups

import (
	"context"
	"net/http"

	groupprojectstore "github.com/LAULAUtonton/GLOBALISSUES/internal/app/store/groupprojects"
	"github.com/LAULAUtonton/GLOBALISSUES/internal/app/system/httpjson"
	"github.com/LAULAUtonton/GLOBALISSUES/internal/app/system/timeouts"
	"github.com/LAULAUtonton/GLOBALISSUES/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleUpdateDayStage processes PUT /groups/{groupID}/day. The stage at
// day{n} is replaced wholesale with the submitted data; clients always
// send the full stage form, so there is no field-level merge.
func (h *Handler) HandleUpdateDayStage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "groupID")

	var req updateDayRequest
	if err := httpjson.Decode(w, r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// The range check comes before anything touches the store, so a bad
	// day number fails the same way whether or not the id exists.
	if !models.ValidDay(req.Day) {
		httpjson.Error(w, http.StatusBadRequest, "Invalid day")
		return
	}
	if len(req.Data) == 0 {
		httpjson.Error(w, http.StatusBadRequest, "data is required")
		return
	}

	data, err := models.DecodeDayStage(req.Day, req.Data)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid day data: "+err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := groupprojectstore.New(h.DB)
	err = store.UpdateDayStage(ctx, id, req.Day, data)
	switch {
	case err == groupprojectstore.ErrInvalidDay:
		httpjson.Error(w, http.StatusBadRequest, "Invalid day")
		return
	case err == mongo.ErrNoDocuments:
		httpjson.Error(w, http.StatusNotFound, "Group not found")
		return
	case err != nil:
		h.Log.Error("update day stage",
			zap.String("id", id),
			zap.Int("day", req.Day),
			zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "A database error occurred")
		return
	}

	httpjson.Write(w, http.StatusOK, updateDayResponse{
		Message: "Updated successfully",
		Day:     req.Day,
	})
}
