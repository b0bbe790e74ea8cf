package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/httputil"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/service"
)

// ActivityHandler serves the recent-activity feed
type ActivityHandler struct {
	activityService *service.ActivityService
	logger          *slog.Logger
}

func NewActivityHandler(activityService *service.ActivityService, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		logger:          logger,
	}
}

// RecentActivity returns the newest activity entries
// GET /api/activity?limit=
func (h *ActivityHandler) RecentActivity(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	entries, err := h.activityService.Recent(r.Context(), limit)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, entries)
}
