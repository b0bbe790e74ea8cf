// Package seed loads the embedded default dataset into a fresh store:
// the category set, the admin account, sample documents and activity, and
// the analytics display defaults.
package seed

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/domain/models"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/service"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/store"
)

//go:embed data/dataset.yaml
var dataFiles embed.FS

// Dataset mirrors data/dataset.yaml.
type Dataset struct {
	Categories []CategoryEntry `yaml:"categories"`
	Admin      AdminEntry      `yaml:"admin"`
	Documents  []DocumentEntry `yaml:"documents"`
	Activity   []ActivityEntry `yaml:"activity"`
	Analytics  AnalyticsEntry  `yaml:"analytics"`
}

type CategoryEntry struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type AdminEntry struct {
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	DisplayName string `yaml:"display_name"`
	Role        string `yaml:"role"`
	AvatarURL   string `yaml:"avatar_url"`
}

type DocumentEntry struct {
	Title    string   `yaml:"title"`
	Content  string   `yaml:"content"`
	Preview  string   `yaml:"preview"`
	Category string   `yaml:"category"`
	Tags     []string `yaml:"tags"`
}

type ActivityEntry struct {
	Type       string `yaml:"type"`
	User       string `yaml:"user"`
	Document   string `yaml:"document"`
	DocumentID *int   `yaml:"document_id"`
	Query      string `yaml:"query"`
	Message    string `yaml:"message"`
}

type AnalyticsEntry struct {
	AverageQueryTime string              `yaml:"average_query_time"`
	TopSearchTerms   []models.SearchTerm `yaml:"top_search_terms"`
	UsageOverTime    []int               `yaml:"usage_over_time"`
}

// Load parses the embedded dataset.
func Load() (*Dataset, error) {
	data, err := dataFiles.ReadFile("data/dataset.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded dataset: %w", err)
	}

	var dataset Dataset
	if err := yaml.Unmarshal(data, &dataset); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dataset: %w", err)
	}
	return &dataset, nil
}

// Apply registers the dataset into the store. Documents are created
// through the normal store path so category counts and the
// documents-indexed counter come out consistent.
func Apply(ctx context.Context, st store.Store, logger *slog.Logger) error {
	dataset, err := Load()
	if err != nil {
		return err
	}

	for _, c := range dataset.Categories {
		if _, err := st.CreateCategory(ctx, models.Category{ID: c.ID, Name: c.Name}); err != nil {
			return fmt.Errorf("failed to seed category %q: %w", c.ID, err)
		}
	}

	hash, err := service.HashPassword(dataset.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin, err := st.CreateUser(ctx, &models.User{
		Username:     dataset.Admin.Username,
		PasswordHash: hash,
		DisplayName:  dataset.Admin.DisplayName,
		Role:         dataset.Admin.Role,
		AvatarURL:    dataset.Admin.AvatarURL,
	})
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	for _, d := range dataset.Documents {
		if _, err := st.CreateDocument(ctx, &models.Document{
			Title:      d.Title,
			Content:    d.Content,
			Preview:    d.Preview,
			CategoryID: d.Category,
			Tags:       d.Tags,
			UserID:     admin.ID,
		}); err != nil {
			return fmt.Errorf("failed to seed document %q: %w", d.Title, err)
		}
	}

	for _, a := range dataset.Activity {
		entry := &models.ActivityLog{
			Type:       models.ActivityType(a.Type),
			DocumentID: a.DocumentID,
			Details: models.ActivityDetails{
				User:     a.User,
				Document: a.Document,
				Query:    a.Query,
				Message:  a.Message,
			},
		}
		if a.Type != string(models.ActivitySystem) {
			userID := admin.ID
			entry.UserID = &userID
		}
		if _, err := st.AppendActivity(ctx, entry); err != nil {
			return fmt.Errorf("failed to seed activity entry: %w", err)
		}
	}

	if _, err := st.UpdateAnalytics(ctx, models.AnalyticsUpdate{
		AverageQueryTime: &dataset.Analytics.AverageQueryTime,
		TopSearchTerms:   dataset.Analytics.TopSearchTerms,
		UsageOverTime:    dataset.Analytics.UsageOverTime,
	}); err != nil {
		return fmt.Errorf("failed to seed analytics: %w", err)
	}

	logger.Info("default dataset loaded",
		"categories", len(dataset.Categories),
		"documents", len(dataset.Documents),
		"activity_entries", len(dataset.Activity),
	)
	return nil
}
