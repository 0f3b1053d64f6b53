package models

import (
	"time"

	"github.com/google/uuid"

	dbtypes "github.com/socialai/socialai-backend/pkg/db/types"
)

// ActivityLog is the append-only audit trail. Rows are written by mutating
// services and never modified afterwards.
type ActivityLog struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID       `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"` // -> users.id
	Action     string          `gorm:"type:text;not null" json:"action"`
	EntityType string          `gorm:"column:entity_type;type:text;not null" json:"entity_type"`
	EntityID   *uuid.UUID      `gorm:"column:entity_id;type:uuid" json:"entity_id,omitempty"`
	Details    dbtypes.JSONMap `gorm:"type:text;not null;default:'{}'" json:"details"`
	IPAddress  *string         `gorm:"column:ip_address" json:"ip_address,omitempty"`
	UserAgent  *string         `gorm:"column:user_agent" json:"user_agent,omitempty"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
