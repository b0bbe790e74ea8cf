package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/ai"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/config"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/domain/models"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/seed"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/service"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/store"
)

// newTestServer wires the full route table over a freshly seeded store,
// mirroring the production mux.
func newTestServer(t *testing.T) (*httptest.Server, *store.MemoryStore) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	memStore := store.NewMemoryStore()
	require.NoError(t, seed.Apply(context.Background(), memStore, logger))

	aiService, err := ai.NewService(&config.Config{}, logger)
	require.NoError(t, err)

	docHandler := NewDocumentHandler(service.NewDocumentService(memStore, logger), logger)
	searchHandler := NewSearchHandler(service.NewSearchService(memStore, logger), logger)
	categoryHandler := NewCategoryHandler(memStore, logger)
	activityHandler := NewActivityHandler(service.NewActivityService(memStore, logger), logger)
	analyticsHandler := NewAnalyticsHandler(service.NewAnalyticsService(memStore, logger), logger)
	aiHandler := NewAIHandler(aiService, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", docHandler.HealthCheck)
	mux.HandleFunc("GET /api/documents", docHandler.ListDocuments)
	mux.HandleFunc("POST /api/documents", docHandler.CreateDocument)
	mux.HandleFunc("GET /api/documents/{id}", docHandler.GetDocument)
	mux.HandleFunc("PUT /api/documents/{id}", docHandler.UpdateDocument)
	mux.HandleFunc("DELETE /api/documents/{id}", docHandler.DeleteDocument)
	mux.HandleFunc("GET /api/search", searchHandler.Search)
	mux.HandleFunc("GET /api/categories", categoryHandler.ListCategories)
	mux.HandleFunc("GET /api/activity", activityHandler.RecentActivity)
	mux.HandleFunc("GET /api/analytics", analyticsHandler.GetAnalytics)
	mux.HandleFunc("POST /api/ai/analyze-document", aiHandler.AnalyzeDocument)
	mux.HandleFunc("POST /api/ai/generate-tags", aiHandler.GenerateTags)
	mux.HandleFunc("POST /api/ai/categorize", aiHandler.Categorize)
	mux.HandleFunc("POST /api/ai/semantic-search", aiHandler.SemanticSearch)
	mux.HandleFunc("GET /api/ai/status", aiHandler.Status)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, memStore
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, data
}

func TestHealthCheck(t *testing.T) {
	server, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "ok", payload["status"])
}

func TestListCategoriesSeeded(t *testing.T) {
	server, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/api/categories", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var categories []models.Category
	require.NoError(t, json.Unmarshal(body, &categories))
	require.Len(t, categories, 5)

	assert.Equal(t, "all", categories[0].ID)
	assert.Equal(t, 5, categories[0].Count)
	assert.Equal(t, "technical", categories[1].ID)
	assert.Equal(t, 2, categories[1].Count)
	assert.Equal(t, "finance", categories[2].ID)
	assert.Equal(t, 1, categories[2].Count)
}

func TestListDocuments(t *testing.T) {
	server, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/api/documents", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var docs []models.Document
	require.NoError(t, json.Unmarshal(body, &docs))
	assert.Len(t, docs, 5)

	resp, body = doJSON(t, http.MethodGet, server.URL+"/api/documents?category=finance", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "Quarterly Financial Report Q3", docs[0].Title)
}

func TestDocumentCRUD(t *testing.T) {
	server, _ := newTestServer(t)

	// Create
	resp, body := doJSON(t, http.MethodPost, server.URL+"/api/documents", map[string]interface{}{
		"title":      "Deployment Checklist",
		"content":    "Steps for a safe production deployment.",
		"preview":    "Steps for a safe...",
		"categoryId": "technical",
		"tags":       []string{"Ops"},
		"userId":     1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var created models.Document
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, 6, created.ID)
	assert.Equal(t, "Deployment Checklist", created.Title)

	// Read
	resp, body = doJSON(t, http.MethodGet, server.URL+"/api/documents/6", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched models.Document
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, created.Title, fetched.Title)

	// Update
	resp, body = doJSON(t, http.MethodPut, server.URL+"/api/documents/6", map[string]interface{}{
		"title": "Deployment Runbook",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Document
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, "Deployment Runbook", updated.Title)
	assert.Equal(t, "technical", updated.CategoryID)

	// Delete
	resp, body = doJSON(t, http.MethodDelete, server.URL+"/api/documents/6", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var deleted map[string]bool
	require.NoError(t, json.Unmarshal(body, &deleted))
	assert.True(t, deleted["success"])

	resp, _ = doJSON(t, http.MethodGet, server.URL+"/api/documents/6", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateDocumentValidationErrors(t *testing.T) {
	server, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, server.URL+"/api/documents", map[string]interface{}{
		"content": "body only",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var problem map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &problem))
	assert.Equal(t, float64(http.StatusBadRequest), problem["status"])

	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/documents", map[string]interface{}{
		"title":      "X",
		"content":    "Y",
		"preview":    "Z",
		"categoryId": "nonexistent",
		"userId":     1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetDocumentBadID(t *testing.T) {
	server, _ := newTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, server.URL+"/api/documents/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSearchEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/api/search?q=vector", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result models.SearchResult
	require.NoError(t, json.Unmarshal(body, &result))
	require.NotEmpty(t, result.Results)
	assert.Equal(t, "Vector Database Architecture", result.Results[0].Title)
	assert.GreaterOrEqual(t, result.Results[0].Relevance, 0.8)
}

func TestSearchMissingQuery(t *testing.T) {
	server, _ := newTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, server.URL+"/api/search", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestActivitiesEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/api/activity", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []models.FormattedActivityLog
	require.NoError(t, json.Unmarshal(body, &entries))
	assert.Len(t, entries, 5)
	for _, e := range entries {
		assert.NotEmpty(t, e.Time)
	}

	resp, body = doJSON(t, http.MethodGet, server.URL+"/api/activity?limit=2", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &entries))
	assert.Len(t, entries, 2)

	resp, _ = doJSON(t, http.MethodGet, server.URL+"/api/activity?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalyticsEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/api/analytics", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var analytics models.Analytics
	require.NoError(t, json.Unmarshal(body, &analytics))
	assert.Equal(t, 5, analytics.DocumentsIndexed)
	assert.Equal(t, "0.32s", analytics.AverageQueryTime)
	assert.Len(t, analytics.TopSearchTerms, 5)
}

func TestSearchUpdatesAnalytics(t *testing.T) {
	server, _ := newTestServer(t)

	_, _ = doJSON(t, http.MethodGet, server.URL+"/api/search?q=neural+networks", nil)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/api/analytics", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var analytics models.Analytics
	require.NoError(t, json.Unmarshal(body, &analytics))
	assert.Equal(t, 1, analytics.SearchesPerformed)
}

func TestAIStatusUnconfigured(t *testing.T) {
	server, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, server.URL+"/api/ai/status", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var status models.AIStatus
	require.NoError(t, json.Unmarshal(body, &status))
	assert.Equal(t, "unavailable", status.Status)
}

func TestAIEndpointsUnconfigured(t *testing.T) {
	server, _ := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/ai/analyze-document", map[string]string{"text": "some text"})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/ai/generate-tags", map[string]string{"text": "some text"})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodPost, server.URL+"/api/ai/semantic-search", map[string]interface{}{
		"query":     "vector",
		"documents": []map[string]interface{}{{"id": 1, "title": "Doc"}},
	})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestAISemanticSearchMissingQuery(t *testing.T) {
	server, _ := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, server.URL+"/api/ai/semantic-search", map[string]interface{}{
		"documents": []map[string]interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
