package templates

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/socialai/socialai-backend/internal/activitylog"
	"github.com/socialai/socialai-backend/pkg/db/models"
	dbtypes "github.com/socialai/socialai-backend/pkg/db/types"
	"github.com/socialai/socialai-backend/pkg/enums"
	pkgerrors "github.com/socialai/socialai-backend/pkg/errors"
)

// CreateTemplateDTO holds the fields accepted when creating a template.
type CreateTemplateDTO struct {
	Name        string             `json:"name" validate:"required,min=1,max=200"`
	Description string             `json:"description" validate:"omitempty,max=2000"`
	Content     string             `json:"content" validate:"required"`
	Type        enums.TemplateType `json:"type" validate:"omitempty"`
	Category    string             `json:"category" validate:"omitempty,max=100"`
	Platforms   []string           `json:"platforms" validate:"omitempty"`
	TeamID      uuid.UUID          `json:"team_id" validate:"required"`
	IsPublic    bool               `json:"is_public"`
}

// UpdateTemplateDTO carries mutable fields. Nil means unchanged.
type UpdateTemplateDTO struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Content     *string `json:"content" validate:"omitempty"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	IsPublic    *bool   `json:"is_public"`
}

// Service defines template operations.
type Service interface {
	Create(ctx context.Context, createdBy uuid.UUID, dto CreateTemplateDTO) (*models.Template, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Template, error)
	List(ctx context.Context, filters ListFilters) ([]models.Template, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateTemplateDTO) (*models.Template, error)
	Delete(ctx context.Context, actor, id uuid.UUID) error
	RecordUsage(ctx context.Context, id uuid.UUID) error
}

type templateRepository interface {
	Create(ctx context.Context, template *models.Template) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Template, error)
	List(ctx context.Context, filters ListFilters) ([]models.Template, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.Template, error)
	IncrementUsage(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo     templateRepository
	activity activitylog.Recorder
}

// NewService wires the templates service.
func NewService(repo templateRepository, activity activitylog.Recorder) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "templates repository required")
	}
	if activity == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "activity recorder required")
	}
	return &service{repo: repo, activity: activity}, nil
}

func (s *service) Create(ctx context.Context, createdBy uuid.UUID, dto CreateTemplateDTO) (*models.Template, error) {
	if createdBy == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "creator id required")
	}
	if dto.TeamID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "team id required")
	}
	name := strings.TrimSpace(dto.Name)
	if name == "" || strings.TrimSpace(dto.Content) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name and content are required")
	}

	templateType := dto.Type
	if templateType == "" {
		templateType = enums.TemplateTypePost
	}
	if !templateType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid template type")
	}
	if _, err := enums.ParsePlatforms(dto.Platforms); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid platforms")
	}

	template := &models.Template{
		ID:          uuid.New(),
		Name:        name,
		Description: strings.TrimSpace(dto.Description),
		Content:     dto.Content,
		Type:        templateType,
		Category:    strings.TrimSpace(dto.Category),
		Platforms:   dbtypes.StringArray(dto.Platforms),
		CreatedBy:   createdBy,
		TeamID:      dto.TeamID,
		IsPublic:    dto.IsPublic,
	}
	if err := s.repo.Create(ctx, template); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create template")
	}

	s.activity.Record(ctx, activitylog.RecordParams{
		UserID:     createdBy,
		Action:     "template.created",
		EntityType: "template",
		EntityID:   &template.ID,
		Details:    map[string]any{"name": template.Name},
	})
	return template, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Template, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "template id required")
	}
	template, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "template not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load template")
	}
	return template, nil
}

func (s *service) List(ctx context.Context, filters ListFilters) ([]models.Template, error) {
	if filters.Type != "" && !filters.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid type filter")
	}
	rows, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list templates")
	}
	return rows, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateTemplateDTO) (*models.Template, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "template id required")
	}

	updates := map[string]any{}
	if dto.Name != nil {
		name := strings.TrimSpace(*dto.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		updates["name"] = name
	}
	if dto.Description != nil {
		updates["description"] = strings.TrimSpace(*dto.Description)
	}
	if dto.Content != nil {
		updates["content"] = *dto.Content
	}
	if dto.Category != nil {
		updates["category"] = strings.TrimSpace(*dto.Category)
	}
	if dto.IsPublic != nil {
		updates["is_public"] = *dto.IsPublic
	}

	template, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "template not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update template")
	}
	return template, nil
}

func (s *service) Delete(ctx context.Context, actor, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "template id required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "template not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete template")
	}

	s.activity.Record(ctx, activitylog.RecordParams{
		UserID:     actor,
		Action:     "template.deleted",
		EntityType: "template",
		EntityID:   &id,
	})
	return nil
}

func (s *service) RecordUsage(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "template id required")
	}
	if err := s.repo.IncrementUsage(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "template not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record template usage")
	}
	return nil
}
