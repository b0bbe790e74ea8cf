package handler

import (
	"log/slog"
	"net/http"

	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/httputil"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/service"
)

// SearchHandler handles keyword search requests
type SearchHandler struct {
	searchService *service.SearchService
	logger        *slog.Logger
}

func NewSearchHandler(searchService *service.SearchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// Search ranks documents against the q parameter
// GET /api/search?q=
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	result, err := h.searchService.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}
