package documents

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/socialai/socialai-backend/internal/activitylog"
	"github.com/socialai/socialai-backend/pkg/db/models"
	"github.com/socialai/socialai-backend/pkg/enums"
	pkgerrors "github.com/socialai/socialai-backend/pkg/errors"
	"github.com/socialai/socialai-backend/pkg/logger"
)

// CreateDocumentDTO creates a document from inline text.
type CreateDocumentDTO struct {
	Name    string             `json:"name" validate:"required,min=1,max=200"`
	Type    enums.DocumentType `json:"type" validate:"required"`
	Content string             `json:"content" validate:"required"`
	TeamID  uuid.UUID          `json:"team_id" validate:"required"`
}

// UploadDocumentDTO creates a document from an uploaded file. The controller
// extracts these fields from the multipart form.
type UploadDocumentDTO struct {
	Name     string
	Type     enums.DocumentType
	TeamID   uuid.UUID
	Filename string
	File     io.Reader
}

// Service defines document operations.
type Service interface {
	Create(ctx context.Context, uploadedBy uuid.UUID, dto CreateDocumentDTO) (*models.Document, error)
	Upload(ctx context.Context, uploadedBy uuid.UUID, dto UploadDocumentDTO) (*models.Document, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Document, error)
	List(ctx context.Context, filters ListFilters) ([]models.Document, error)
	Delete(ctx context.Context, actor, id uuid.UUID) error
}

type documentRepository interface {
	Create(ctx context.Context, document *models.Document) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Document, error)
	List(ctx context.Context, filters ListFilters) ([]models.Document, error)
	MarkProcessed(ctx context.Context, id uuid.UUID, summary string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type fileStore interface {
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
	Remove(ctx context.Context, fileURL string) error
}

// summarizer condenses inline document text. Summaries are best-effort: a
// document is stored even when summarization is unavailable.
type summarizer interface {
	SummarizeDocument(ctx context.Context, name, content string) string
}

// ServiceParams bundles the documents service dependencies.
type ServiceParams struct {
	Repo       documentRepository
	Files      fileStore
	Summarizer summarizer
	Activity   activitylog.Recorder
	Logger     *logger.Logger
}

type service struct {
	repo       documentRepository
	files      fileStore
	summarizer summarizer
	activity   activitylog.Recorder
	logg       *logger.Logger
}

// NewService wires the documents service. Summarizer is optional.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "documents repository required")
	}
	if params.Files == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "file store required")
	}
	if params.Activity == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "activity recorder required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "logger required")
	}
	return &service{
		repo:       params.Repo,
		files:      params.Files,
		summarizer: params.Summarizer,
		activity:   params.Activity,
		logg:       params.Logger,
	}, nil
}

func (s *service) Create(ctx context.Context, uploadedBy uuid.UUID, dto CreateDocumentDTO) (*models.Document, error) {
	name, err := s.validateCommon(uploadedBy, dto.Name, dto.Type, dto.TeamID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(dto.Content) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "content is required")
	}

	content := dto.Content
	document := &models.Document{
		ID:         uuid.New(),
		Name:       name,
		Type:       dto.Type,
		Content:    &content,
		UploadedBy: uploadedBy,
		TeamID:     dto.TeamID,
	}
	if err := s.repo.Create(ctx, document); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create document")
	}

	s.process(ctx, document)
	s.recordActivity(ctx, uploadedBy, "document.created", document.ID, document.Name)
	return document, nil
}

func (s *service) Upload(ctx context.Context, uploadedBy uuid.UUID, dto UploadDocumentDTO) (*models.Document, error) {
	name, err := s.validateCommon(uploadedBy, dto.Name, dto.Type, dto.TeamID)
	if err != nil {
		return nil, err
	}
	if dto.File == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file is required")
	}

	fileURL, err := s.files.Save(ctx, dto.Filename, dto.File)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store uploaded file")
	}

	document := &models.Document{
		ID:         uuid.New(),
		Name:       name,
		Type:       dto.Type,
		FileURL:    &fileURL,
		UploadedBy: uploadedBy,
		TeamID:     dto.TeamID,
	}
	if err := s.repo.Create(ctx, document); err != nil {
		if removeErr := s.files.Remove(ctx, fileURL); removeErr != nil {
			s.logg.Warn(ctx, "orphaned upload left on disk")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create document")
	}

	s.recordActivity(ctx, uploadedBy, "document.uploaded", document.ID, document.Name)
	return document, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "document id required")
	}
	document, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "document not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load document")
	}
	return document, nil
}

func (s *service) List(ctx context.Context, filters ListFilters) ([]models.Document, error) {
	if filters.Type != "" && !filters.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid type filter")
	}
	rows, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list documents")
	}
	return rows, nil
}

func (s *service) Delete(ctx context.Context, actor, id uuid.UUID) error {
	document, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "document not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete document")
	}

	if document.FileURL != nil {
		if err := s.files.Remove(ctx, *document.FileURL); err != nil {
			s.logg.Warn(ctx, "removing stored document file failed")
		}
	}
	s.recordActivity(ctx, actor, "document.deleted", id, document.Name)
	return nil
}

// process summarizes inline content and flips is_processed. Failures are
// logged and never surface to the caller.
func (s *service) process(ctx context.Context, document *models.Document) {
	if s.summarizer == nil || document.Content == nil {
		return
	}
	summary := s.summarizer.SummarizeDocument(ctx, document.Name, *document.Content)
	if summary == "" {
		return
	}
	if err := s.repo.MarkProcessed(ctx, document.ID, summary); err != nil {
		s.logg.Error(ctx, "marking document processed", err)
		return
	}
	document.IsProcessed = true
	document.AISummary = &summary
}

func (s *service) validateCommon(uploadedBy uuid.UUID, rawName string, docType enums.DocumentType, teamID uuid.UUID) (string, error) {
	if uploadedBy == uuid.Nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "uploader id required")
	}
	if teamID == uuid.Nil {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "team id required")
	}
	name := strings.TrimSpace(rawName)
	if name == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if !docType.IsValid() {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "invalid document type")
	}
	return name, nil
}

func (s *service) recordActivity(ctx context.Context, actor uuid.UUID, action string, id uuid.UUID, name string) {
	s.activity.Record(ctx, activitylog.RecordParams{
		UserID:     actor,
		Action:     action,
		EntityType: "document",
		EntityID:   &id,
		Details:    map[string]any{"name": name},
	})
}
