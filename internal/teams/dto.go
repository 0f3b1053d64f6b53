package teams

import (
	"time"

	"github.com/google/uuid"

	"github.com/socialai/socialai-backend/pkg/db/models"
	"github.com/socialai/socialai-backend/pkg/enums"
)

// TeamDTO is the transport shape for a team.
type TeamDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CompanyID   string    `json:"company_id"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MemberDTO is the transport shape for a team membership.
type MemberDTO struct {
	ID       uuid.UUID      `json:"id"`
	TeamID   uuid.UUID      `json:"team_id"`
	UserID   uuid.UUID      `json:"user_id"`
	Role     enums.TeamRole `json:"role"`
	JoinedAt time.Time      `json:"joined_at"`
}

// CreateTeamDTO holds the fields accepted when creating a team.
type CreateTeamDTO struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	CompanyID   string `json:"company_id" validate:"omitempty,max=200"`
}

// UpdateTeamDTO carries the mutable team fields. Nil means unchanged.
type UpdateTeamDTO struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

// AddMemberDTO holds the fields accepted when adding a member.
type AddMemberDTO struct {
	UserID uuid.UUID      `json:"user_id" validate:"required"`
	Role   enums.TeamRole `json:"role" validate:"omitempty"`
}

func teamFromModel(t *models.Team) *TeamDTO {
	if t == nil {
		return nil
	}
	return &TeamDTO{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		CompanyID:   t.CompanyID,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func memberFromModel(m *models.TeamMember) *MemberDTO {
	if m == nil {
		return nil
	}
	return &MemberDTO{
		ID:       m.ID,
		TeamID:   m.TeamID,
		UserID:   m.UserID,
		Role:     m.Role,
		JoinedAt: m.JoinedAt,
	}
}
