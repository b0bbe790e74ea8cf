package handler

import (
	"log/slog"
	"net/http"

	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/httputil"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/service"
)

// AnalyticsHandler serves the analytics snapshot
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	logger           *slog.Logger
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		logger:           logger,
	}
}

// GetAnalytics returns the analytics singleton
// GET /api/analytics
func (h *AnalyticsHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.analyticsService.Snapshot(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, snapshot)
}
