package handler

import (
	"log/slog"
	"net/http"

	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/httputil"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/store"
)

// CategoryHandler serves the category list
type CategoryHandler struct {
	store  store.Store
	logger *slog.Logger
}

func NewCategoryHandler(st store.Store, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{store: st, logger: logger}
}

// ListCategories returns all categories with their document counts
// GET /api/categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.store.ListCategories(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, categories)
}
