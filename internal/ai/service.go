// Package ai proxies document text to an OpenAI-compatible
// chat-completion API for analysis, tagging, categorization and semantic
// re-ranking. Callers must treat every operation as best-effort: the
// semantic-search path degrades to a local heuristic, everything else
// surfaces the failure.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/config"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/domain"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/domain/models"
)

const (
	statusAvailable   = "available"
	statusUnavailable = "unavailable"
)

// Service wraps the completion client. A nil client means the credential
// is unconfigured; every call then fails with domain.ErrUnavailable.
type Service struct {
	client llms.Model
	logger *slog.Logger
}

// NewService builds the proxy from configuration. A missing API key is
// not an error: the service starts in the unavailable state so the
// status endpoint can report it.
func NewService(cfg *config.Config, logger *slog.Logger) (*Service, error) {
	if cfg.OpenAIAPIKey == "" {
		logger.Warn("completion API key not configured, AI endpoints unavailable")
		return &Service{logger: logger}, nil
	}

	opts := []openai.Option{
		openai.WithToken(cfg.OpenAIAPIKey),
		openai.WithModel(cfg.OpenAIModel),
	}
	if cfg.OpenAIBaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.OpenAIBaseURL))
	}

	client, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}

	return &Service{client: client, logger: logger}, nil
}

// NewServiceWithClient injects a prebuilt model, used by tests.
func NewServiceWithClient(client llms.Model, logger *slog.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Available reports whether the completion credential is configured.
func (s *Service) Available() bool {
	return s.client != nil
}

// Status renders availability for the status endpoint.
func (s *Service) Status() models.AIStatus {
	if s.Available() {
		return models.AIStatus{Status: statusAvailable}
	}
	return models.AIStatus{Status: statusUnavailable}
}

// AnalyzeDocument extracts topics, entities, a summary, sentiment and a
// readability estimate from document text.
func (s *Service) AnalyzeDocument(ctx context.Context, text string) (*models.DocumentAnalysis, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: document text is required", domain.ErrValidation)
	}

	var analysis models.DocumentAnalysis
	err := s.complete(ctx, analyzeSystemPrompt,
		buildAnalyzePrompt(truncate(text, config.MaxAnalyzeInputLength)), &analysis)
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

// GenerateTags produces 3-5 tags for document text. A response without a
// tags array yields an empty list, never nil.
func (s *Service) GenerateTags(ctx context.Context, text string) (*models.GeneratedTags, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: document text is required", domain.ErrValidation)
	}

	var tags models.GeneratedTags
	err := s.complete(ctx, tagsSystemPrompt,
		buildTagsPrompt(truncate(text, config.MaxAnalyzeInputLength)), &tags)
	if err != nil {
		return nil, err
	}
	if tags.Tags == nil {
		tags.Tags = []string{}
	}
	return &tags, nil
}

// Categorize assigns the document to one of the known categories,
// defaulting to technical when the model answers with none.
func (s *Service) Categorize(ctx context.Context, text, title string) (*models.Categorization, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: document text is required", domain.ErrValidation)
	}

	var result models.Categorization
	err := s.complete(ctx, categorizeSystemPrompt,
		buildCategorizePrompt(truncate(text, config.MaxCategorizeInputLength), title), &result)
	if err != nil {
		return nil, err
	}
	if result.Category == "" {
		result.Category = "technical"
	}
	return &result, nil
}

// complete runs one JSON-mode chat completion and unmarshals the reply
// into dest. Markdown code fences around the JSON are tolerated.
func (s *Service) complete(ctx context.Context, systemPrompt, userPrompt string, dest interface{}) error {
	if !s.Available() {
		return fmt.Errorf("%w: completion API key is not configured", domain.ErrUnavailable)
	}

	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(userPrompt)},
		},
	}

	response, err := s.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
	if err != nil {
		return fmt.Errorf("%w: completion call failed: %v", domain.ErrUnavailable, err)
	}
	if len(response.Choices) == 0 {
		return fmt.Errorf("%w: completion returned no choices", domain.ErrUnavailable)
	}

	payload := stripCodeFences(response.Choices[0].Content)
	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		s.logger.Warn("failed to parse completion response", "response", payload, "error", err)
		return fmt.Errorf("%w: malformed completion response: %v", domain.ErrUnavailable, err)
	}
	return nil
}

func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
