package documents

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/socialai/socialai-backend/pkg/db/models"
	"github.com/socialai/socialai-backend/pkg/enums"
)

// Repository exposes document persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a documents repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListFilters narrows the returned document set. Zero values are ignored.
type ListFilters struct {
	TeamID      uuid.UUID
	UploadedBy  uuid.UUID
	Type        enums.DocumentType
	IsProcessed *bool
}

// Create inserts one document.
func (r *Repository) Create(ctx context.Context, document *models.Document) error {
	return r.db.WithContext(ctx).Create(document).Error
}

// FindByID loads one document.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Document, error) {
	var document models.Document
	if err := r.db.WithContext(ctx).First(&document, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &document, nil
}

// List returns matching documents, newest first.
func (r *Repository) List(ctx context.Context, filters ListFilters) ([]models.Document, error) {
	query := r.db.WithContext(ctx).Model(&models.Document{})
	if filters.TeamID != uuid.Nil {
		query = query.Where("team_id = ?", filters.TeamID)
	}
	if filters.UploadedBy != uuid.Nil {
		query = query.Where("uploaded_by = ?", filters.UploadedBy)
	}
	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.IsProcessed != nil {
		query = query.Where("is_processed = ?", *filters.IsProcessed)
	}

	var rows []models.Document
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// MarkProcessed stamps the AI summary on an existing document.
func (r *Repository) MarkProcessed(ctx context.Context, id uuid.UUID, summary string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Document{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_processed": true, "ai_summary": summary})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes one document.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Document{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
