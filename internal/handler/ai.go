package handler

import (
	"log/slog"
	"net/http"

	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/ai"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/domain/models"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/httputil"
)

// AIHandler proxies requests to the completion-model service
type AIHandler struct {
	aiService *ai.Service
	logger    *slog.Logger
}

func NewAIHandler(aiService *ai.Service, logger *slog.Logger) *AIHandler {
	return &AIHandler{
		aiService: aiService,
		logger:    logger,
	}
}

type analyzeRequest struct {
	Text string `json:"text"`
}

// AnalyzeDocument extracts key information from document text
// POST /api/ai/analyze-document
func (h *AIHandler) AnalyzeDocument(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	analysis, err := h.aiService.AnalyzeDocument(r.Context(), req.Text)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, analysis)
}

// GenerateTags suggests tags for document text
// POST /api/ai/generate-tags
func (h *AIHandler) GenerateTags(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tags, err := h.aiService.GenerateTags(r.Context(), req.Text)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, tags)
}

type categorizeRequest struct {
	Text  string `json:"text"`
	Title string `json:"title"`
}

// Categorize assigns a category to document text
// POST /api/ai/categorize
func (h *AIHandler) Categorize(w http.ResponseWriter, r *http.Request) {
	var req categorizeRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.aiService.Categorize(r.Context(), req.Text, req.Title)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

type semanticSearchRequest struct {
	Query     string            `json:"query"`
	Documents []models.Document `json:"documents"`
}

// SemanticSearch re-ranks the submitted documents against the query
// POST /api/ai/semantic-search
func (h *AIHandler) SemanticSearch(w http.ResponseWriter, r *http.Request) {
	var req semanticSearchRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Query == "" {
		httputil.RespondError(w, http.StatusBadRequest, "search query is required")
		return
	}

	result, err := h.aiService.SemanticSearch(r.Context(), req.Query, req.Documents)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// Status reports whether the completion credential is configured
// GET /api/ai/status
func (h *AIHandler) Status(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.aiService.Status())
}
