package socialaccounts

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/socialai/socialai-backend/pkg/db/models"
	"github.com/socialai/socialai-backend/pkg/enums"
)

// Repository exposes social account persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a social accounts repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListFilters narrows the returned account set. Zero values are ignored.
type ListFilters struct {
	TeamID   uuid.UUID
	Platform enums.Platform
	IsActive *bool
}

// Create inserts one account connection.
func (r *Repository) Create(ctx context.Context, account *models.SocialAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}

// FindByID loads one account.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.SocialAccount, error) {
	var account models.SocialAccount
	if err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// List returns matching accounts, newest first.
func (r *Repository) List(ctx context.Context, filters ListFilters) ([]models.SocialAccount, error) {
	query := r.db.WithContext(ctx).Model(&models.SocialAccount{})
	if filters.TeamID != uuid.Nil {
		query = query.Where("team_id = ?", filters.TeamID)
	}
	if filters.Platform != "" {
		query = query.Where("platform = ?", filters.Platform)
	}
	if filters.IsActive != nil {
		query = query.Where("is_active = ?", *filters.IsActive)
	}

	var accounts []models.SocialAccount
	if err := query.Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// Deactivate flips is_active off for a currently active account.
func (r *Repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.SocialAccount{}).
		Where("id = ? AND is_active = ?", id, true).
		UpdateColumn("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
