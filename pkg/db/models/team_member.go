package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/socialai/socialai-backend/pkg/enums"
)

// TeamMember links a user to a team with a team-scoped role.
type TeamMember struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey"`
	TeamID   uuid.UUID      `gorm:"column:team_id;type:uuid;not null;index:idx_team_members_team_user,unique"` // -> teams.id
	UserID   uuid.UUID      `gorm:"column:user_id;type:uuid;not null;index:idx_team_members_team_user,unique"` // -> users.id
	Role     enums.TeamRole `gorm:"type:text;not null;default:'member'"`
	JoinedAt time.Time      `gorm:"column:joined_at;autoCreateTime"`
}
