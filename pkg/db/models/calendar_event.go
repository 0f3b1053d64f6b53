package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/socialai/socialai-backend/pkg/enums"
)

// CalendarEvent is a dated entry on the content calendar, optionally linked to
// the post it tracks.
type CalendarEvent struct {
	ID          uuid.UUID               `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string                  `gorm:"type:text;not null" json:"title"`
	Description string                  `gorm:"type:text;not null;default:''" json:"description"`
	StartAt     time.Time               `gorm:"column:start_at;not null;index" json:"start_at"`
	EndAt       time.Time               `gorm:"column:end_at;not null" json:"end_at"`
	Type        enums.CalendarEventType `gorm:"type:text;not null;default:'post'" json:"type"`
	PostID      *uuid.UUID              `gorm:"column:post_id;type:uuid" json:"post_id,omitempty"`        // -> posts.id, optional
	CreatedBy   uuid.UUID               `gorm:"column:created_by;type:uuid;not null" json:"created_by"`   // -> users.id
	TeamID      uuid.UUID               `gorm:"column:team_id;type:uuid;not null;index" json:"team_id"`   // -> teams.id
	CreatedAt   time.Time               `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time               `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
