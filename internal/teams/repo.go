package teams

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/socialai/socialai-backend/pkg/db/models"
)

// Repository exposes team and membership persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a teams repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListFilters narrows the returned team set. Zero values are ignored.
type ListFilters struct {
	CompanyID string
	CreatedBy uuid.UUID
}

// Create inserts a new team.
func (r *Repository) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// FindByID loads one team.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	if err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// List returns every team matching the filters, newest first.
func (r *Repository) List(ctx context.Context, filters ListFilters) ([]models.Team, error) {
	query := r.db.WithContext(ctx).Model(&models.Team{})
	if filters.CompanyID != "" {
		query = query.Where("company_id = ?", filters.CompanyID)
	}
	if filters.CreatedBy != uuid.Nil {
		query = query.Where("created_by = ?", filters.CreatedBy)
	}

	var teams []models.Team
	if err := query.Order("created_at DESC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// Update applies mutable fields and returns the fresh row.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, dto UpdateTeamDTO) (*models.Team, error) {
	updates := map[string]any{}
	if dto.Name != nil {
		updates["name"] = *dto.Name
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}

	if len(updates) > 0 {
		result := r.db.WithContext(ctx).Model(&models.Team{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.FindByID(ctx, id)
}

// Delete removes the team. Memberships cascade at the database level.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Team{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddMember inserts a membership row.
func (r *Repository) AddMember(ctx context.Context, member *models.TeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// ListMembers returns every membership for a team.
func (r *Repository) ListMembers(ctx context.Context, teamID uuid.UUID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("joined_at ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// RemoveMember deletes one membership.
func (r *Repository) RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.TeamMember{}, "team_id = ? AND user_id = ?", teamID, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
