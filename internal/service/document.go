package service

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/config"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/domain"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/domain/models"
	"github.com/DeAtHfIrE26/Intelligent-Retriever/internal/store"
)

// actorName labels activity entries until real session identity exists.
const actorName = "Current User"

// DocumentService implements document lifecycle operations and the
// activity-logging policy attached to them.
type DocumentService struct {
	store  store.Store
	logger *slog.Logger
}

func NewDocumentService(st store.Store, logger *slog.Logger) *DocumentService {
	return &DocumentService{store: st, logger: logger}
}

// CreateDocumentRequest carries the writable document fields.
type CreateDocumentRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Preview    string   `json:"preview"`
	CategoryID string   `json:"categoryId"`
	Tags       []string `json:"tags"`
	UserID     int      `json:"userId"`
}

func (r CreateDocumentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, config.MaxDocumentTitleLength)),
		validation.Field(&r.Content, validation.Required, validation.Length(1, config.MaxDocumentContentLength)),
		validation.Field(&r.Preview, validation.Required),
		validation.Field(&r.CategoryID, validation.Required),
		validation.Field(&r.UserID, validation.Required, validation.Min(1)),
		validation.Field(&r.Tags, validation.Length(0, config.MaxTagsPerDocument),
			validation.Each(validation.Length(1, config.MaxTagLength))),
	)
}

// UpdateDocumentRequest is a partial update; nil fields are untouched.
type UpdateDocumentRequest struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	Preview    *string   `json:"preview"`
	CategoryID *string   `json:"categoryId"`
	Tags       *[]string `json:"tags"`
	UserID     *int      `json:"userId"`
}

func (r UpdateDocumentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, config.MaxDocumentTitleLength)),
		validation.Field(&r.Content, validation.NilOrNotEmpty, validation.Length(1, config.MaxDocumentContentLength)),
		validation.Field(&r.CategoryID, validation.NilOrNotEmpty),
	)
}

// List returns documents filtered by category; empty or "all" means no
// filter.
func (s *DocumentService) List(ctx context.Context, categoryID string) ([]models.Document, error) {
	return s.store.ListDocuments(ctx, categoryID)
}

// Get fetches a document and records a document_accessed event.
func (s *DocumentService) Get(ctx context.Context, id int) (*models.Document, error) {
	doc, err := s.store.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, models.ActivityDocumentAccessed, &doc.UserID, &doc.ID, models.ActivityDetails{
		User:     actorName,
		Document: doc.Title,
	})
	return doc, nil
}

// Create validates the request, verifies the category reference, stores
// the document and records a document_added event.
func (s *DocumentService) Create(ctx context.Context, req *CreateDocumentRequest) (*models.Document, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	if _, err := s.store.GetCategory(ctx, req.CategoryID); err != nil {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, req.CategoryID)
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	doc, err := s.store.CreateDocument(ctx, &models.Document{
		Title:      req.Title,
		Content:    req.Content,
		Preview:    req.Preview,
		CategoryID: req.CategoryID,
		Tags:       tags,
		UserID:     req.UserID,
	})
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, models.ActivityDocumentAdded, &doc.UserID, &doc.ID, models.ActivityDetails{
		User:     actorName,
		Document: doc.Title,
	})

	s.logger.Info("document created", "document_id", doc.ID, "category", doc.CategoryID)
	return doc, nil
}

// Update applies a partial update and records a document_updated event.
func (s *DocumentService) Update(ctx context.Context, id int, req *UpdateDocumentRequest) (*models.Document, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}

	if req.CategoryID != nil {
		if _, err := s.store.GetCategory(ctx, *req.CategoryID); err != nil {
			return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, *req.CategoryID)
		}
	}

	doc, err := s.store.UpdateDocument(ctx, id, store.DocumentUpdate{
		Title:      req.Title,
		Content:    req.Content,
		Preview:    req.Preview,
		CategoryID: req.CategoryID,
		Tags:       req.Tags,
		UserID:     req.UserID,
	})
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, models.ActivityDocumentUpdated, &doc.UserID, &doc.ID, models.ActivityDetails{
		User:     actorName,
		Document: doc.Title,
	})

	s.logger.Info("document updated", "document_id", doc.ID)
	return doc, nil
}

// Delete removes a document and records a document_deleted event carrying
// the deleted title, since the entity itself is gone.
func (s *DocumentService) Delete(ctx context.Context, id int) error {
	doc, err := s.store.GetDocument(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.DeleteDocument(ctx, id); err != nil {
		return err
	}

	s.logActivity(ctx, models.ActivityDocumentDeleted, nil, nil, models.ActivityDetails{
		User:     actorName,
		Document: doc.Title,
	})

	s.logger.Info("document deleted", "document_id", id)
	return nil
}

// logActivity appends an event; log failures are reported but never block
// the operation that triggered them.
func (s *DocumentService) logActivity(ctx context.Context, eventType models.ActivityType, userID, documentID *int, details models.ActivityDetails) {
	_, err := s.store.AppendActivity(ctx, &models.ActivityLog{
		Type:       eventType,
		UserID:     userID,
		DocumentID: documentID,
		Details:    details,
	})
	if err != nil {
		s.logger.Warn("failed to record activity", "type", eventType, "error", err)
	}
}
