package posts

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/socialai/socialai-backend/pkg/db/models"
	"github.com/socialai/socialai-backend/pkg/enums"
)

// Repository exposes post persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a posts repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListFilters narrows the returned post set. Zero values are ignored.
type ListFilters struct {
	TeamID    uuid.UUID
	CreatedBy uuid.UUID
	Status    enums.PostStatus
	Type      enums.PostType
	Platform  enums.Platform
}

// Create inserts a new post.
func (r *Repository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// FindByID loads one post.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns every post matching the filters, newest first. The platform
// filter matches against the JSON-encoded platform array.
func (r *Repository) List(ctx context.Context, filters ListFilters) ([]models.Post, error) {
	query := r.db.WithContext(ctx).Model(&models.Post{})
	if filters.TeamID != uuid.Nil {
		query = query.Where("team_id = ?", filters.TeamID)
	}
	if filters.CreatedBy != uuid.Nil {
		query = query.Where("created_by = ?", filters.CreatedBy)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.Platform != "" {
		query = query.Where("platforms LIKE ?", "%\""+string(filters.Platform)+"\"%")
	}

	var posts []models.Post
	if err := query.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Save persists the full post row.
func (r *Repository) Save(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

// Delete removes one post.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Post{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
