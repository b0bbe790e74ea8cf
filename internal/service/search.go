package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/domain"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/domain/models"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/store"
)

// SearchService runs the primary keyword search path and records search
// activity.
type SearchService struct {
	store  store.Store
	logger *slog.Logger
}

func NewSearchService(st store.Store, logger *slog.Logger) *SearchService {
	return &SearchService{store: st, logger: logger}
}

// Search ranks all documents against the query. A blank query is a
// validation error.
func (s *SearchService) Search(ctx context.Context, query string) (*models.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: search query is required", domain.ErrValidation)
	}

	result, err := s.store.SearchDocuments(ctx, query)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.AppendActivity(ctx, &models.ActivityLog{
		Type: models.ActivitySearch,
		Details: models.ActivityDetails{
			User:  actorName,
			Query: query,
		},
	}); err != nil {
		s.logger.Warn("failed to record search activity", "error", err)
	}

	s.logger.Debug("search executed", "query", query, "results", len(result.Results), "took_ms", result.Took)
	return result, nil
}
