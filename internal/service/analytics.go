package service

import (
	"context"
	"log/slog"

	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/domain/models"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/store"
)

// AnalyticsService exposes the analytics singleton.
type AnalyticsService struct {
	store  store.Store
	logger *slog.Logger
}

func NewAnalyticsService(st store.Store, logger *slog.Logger) *AnalyticsService {
	return &AnalyticsService{store: st, logger: logger}
}

// Snapshot returns the current analytics row.
func (s *AnalyticsService) Snapshot(ctx context.Context) (*models.Analytics, error) {
	return s.store.GetAnalytics(ctx)
}
