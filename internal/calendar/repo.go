package calendar

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/socialai/socialai-backend/pkg/db/models"
	"github.com/socialai/socialai-backend/pkg/enums"
)

// Repository exposes calendar event persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a calendar repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListFilters narrows the returned event set. Zero values are ignored.
// Start and End bound the window: events overlapping [Start, End] match.
type ListFilters struct {
	TeamID uuid.UUID
	Type   enums.CalendarEventType
	PostID uuid.UUID
	Start  time.Time
	End    time.Time
}

// Create inserts one event.
func (r *Repository) Create(ctx context.Context, event *models.CalendarEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// FindByID loads one event.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.CalendarEvent, error) {
	var event models.CalendarEvent
	if err := r.db.WithContext(ctx).First(&event, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

// List returns matching events ordered by start time.
func (r *Repository) List(ctx context.Context, filters ListFilters) ([]models.CalendarEvent, error) {
	query := r.db.WithContext(ctx).Model(&models.CalendarEvent{})
	if filters.TeamID != uuid.Nil {
		query = query.Where("team_id = ?", filters.TeamID)
	}
	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.PostID != uuid.Nil {
		query = query.Where("post_id = ?", filters.PostID)
	}
	if !filters.Start.IsZero() {
		query = query.Where("end_at >= ?", filters.Start)
	}
	if !filters.End.IsZero() {
		query = query.Where("start_at <= ?", filters.End)
	}

	var events []models.CalendarEvent
	if err := query.Order("start_at ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// Update applies mutable fields and returns the fresh row.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (*models.CalendarEvent, error) {
	if len(updates) > 0 {
		result := r.db.WithContext(ctx).Model(&models.CalendarEvent{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.FindByID(ctx, id)
}

// Delete removes one event.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CalendarEvent{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
