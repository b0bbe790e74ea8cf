package service

import (
	"context"
	"log/slog"

	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/domain/models"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/store"
)

// ActivityService exposes the read side of the activity feed.
type ActivityService struct {
	store  store.Store
	logger *slog.Logger
}

func NewActivityService(st store.Store, logger *slog.Logger) *ActivityService {
	return &ActivityService{store: st, logger: logger}
}

// Recent returns the newest entries, at most limit, rendered for display.
func (s *ActivityService) Recent(ctx context.Context, limit int) ([]models.FormattedActivityLog, error) {
	return s.store.RecentActivity(ctx, limit)
}
