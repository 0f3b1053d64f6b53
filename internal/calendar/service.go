package calendar

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/socialai/socialai-backend/internal/activitylog"
	"github.com/socialai/socialai-backend/pkg/db/models"
	"github.com/socialai/socialai-backend/pkg/enums"
	pkgerrors "github.com/socialai/socialai-backend/pkg/errors"
)

// CreateEventDTO holds the fields accepted when creating a calendar event.
type CreateEventDTO struct {
	Title       string                  `json:"title" validate:"required,min=1,max=200"`
	Description string                  `json:"description" validate:"omitempty,max=2000"`
	StartAt     time.Time               `json:"start_at" validate:"required"`
	EndAt       time.Time               `json:"end_at" validate:"required"`
	Type        enums.CalendarEventType `json:"type" validate:"omitempty"`
	PostID      *uuid.UUID              `json:"post_id"`
	TeamID      uuid.UUID               `json:"team_id" validate:"required"`
}

// UpdateEventDTO carries mutable fields. Nil means unchanged.
type UpdateEventDTO struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	StartAt     *time.Time `json:"start_at"`
	EndAt       *time.Time `json:"end_at"`
	PostID      *uuid.UUID `json:"post_id"`
}

// Service defines calendar operations.
type Service interface {
	Create(ctx context.Context, createdBy uuid.UUID, dto CreateEventDTO) (*models.CalendarEvent, error)
	Get(ctx context.Context, id uuid.UUID) (*models.CalendarEvent, error)
	List(ctx context.Context, filters ListFilters) ([]models.CalendarEvent, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateEventDTO) (*models.CalendarEvent, error)
	Delete(ctx context.Context, actor, id uuid.UUID) error
}

type eventRepository interface {
	Create(ctx context.Context, event *models.CalendarEvent) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.CalendarEvent, error)
	List(ctx context.Context, filters ListFilters) ([]models.CalendarEvent, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.CalendarEvent, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo     eventRepository
	activity activitylog.Recorder
}

// NewService wires the calendar service.
func NewService(repo eventRepository, activity activitylog.Recorder) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "calendar repository required")
	}
	if activity == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "activity recorder required")
	}
	return &service{repo: repo, activity: activity}, nil
}

func (s *service) Create(ctx context.Context, createdBy uuid.UUID, dto CreateEventDTO) (*models.CalendarEvent, error) {
	if createdBy == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "creator id required")
	}
	if dto.TeamID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "team id required")
	}
	title := strings.TrimSpace(dto.Title)
	if title == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title is required")
	}
	if dto.StartAt.IsZero() || dto.EndAt.IsZero() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "start and end times are required")
	}
	if dto.EndAt.Before(dto.StartAt) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "event cannot end before it starts")
	}

	eventType := dto.Type
	if eventType == "" {
		eventType = enums.CalendarEventTypePost
	}
	if !eventType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid event type")
	}

	event := &models.CalendarEvent{
		ID:          uuid.New(),
		Title:       title,
		Description: strings.TrimSpace(dto.Description),
		StartAt:     dto.StartAt.UTC(),
		EndAt:       dto.EndAt.UTC(),
		Type:        eventType,
		PostID:      dto.PostID,
		CreatedBy:   createdBy,
		TeamID:      dto.TeamID,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create calendar event")
	}

	s.activity.Record(ctx, activitylog.RecordParams{
		UserID:     createdBy,
		Action:     "calendar.event_created",
		EntityType: "calendar_event",
		EntityID:   &event.ID,
		Details:    map[string]any{"title": event.Title},
	})
	return event, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.CalendarEvent, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "event id required")
	}
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "calendar event not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load calendar event")
	}
	return event, nil
}

func (s *service) List(ctx context.Context, filters ListFilters) ([]models.CalendarEvent, error) {
	if filters.Type != "" && !filters.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid type filter")
	}
	if !filters.Start.IsZero() && !filters.End.IsZero() && filters.End.Before(filters.Start) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "range end precedes range start")
	}
	events, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list calendar events")
	}
	return events, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateEventDTO) (*models.CalendarEvent, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "event id required")
	}

	// Window changes are validated against the stored row so a partial
	// update cannot invert the event.
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	start, end := current.StartAt, current.EndAt

	updates := map[string]any{}
	if dto.Title != nil {
		title := strings.TrimSpace(*dto.Title)
		if title == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "title cannot be empty")
		}
		updates["title"] = title
	}
	if dto.Description != nil {
		updates["description"] = strings.TrimSpace(*dto.Description)
	}
	if dto.StartAt != nil {
		start = dto.StartAt.UTC()
		updates["start_at"] = start
	}
	if dto.EndAt != nil {
		end = dto.EndAt.UTC()
		updates["end_at"] = end
	}
	if end.Before(start) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "event cannot end before it starts")
	}
	if dto.PostID != nil {
		updates["post_id"] = *dto.PostID
	}

	event, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "calendar event not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update calendar event")
	}
	return event, nil
}

func (s *service) Delete(ctx context.Context, actor, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "event id required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "calendar event not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete calendar event")
	}

	s.activity.Record(ctx, activitylog.RecordParams{
		UserID:     actor,
		Action:     "calendar.event_deleted",
		EntityType: "calendar_event",
		EntityID:   &id,
	})
	return nil
}
