package activitylog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/socialai/socialai-backend/pkg/db/models"
)

// Repository persists audit trail rows. There is no update or delete surface;
// the table is append-only.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an activity log repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListFilters narrows the returned log set. Zero values are ignored.
type ListFilters struct {
	UserID     uuid.UUID
	EntityType string
	Action     string
}

// Create appends one audit row.
func (r *Repository) Create(ctx context.Context, entry *models.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// List returns matching rows, newest first.
func (r *Repository) List(ctx context.Context, filters ListFilters) ([]models.ActivityLog, error) {
	query := r.db.WithContext(ctx).Model(&models.ActivityLog{})
	if filters.UserID != uuid.Nil {
		query = query.Where("user_id = ?", filters.UserID)
	}
	if filters.EntityType != "" {
		query = query.Where("entity_type = ?", filters.EntityType)
	}
	if filters.Action != "" {
		query = query.Where("action = ?", filters.Action)
	}

	var rows []models.ActivityLog
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
