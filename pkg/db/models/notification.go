package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/socialai/socialai-backend/pkg/enums"
)

// Notification is an in-app message targeted at a single user.
type Notification struct {
	ID        uuid.UUID              `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID              `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"` // -> users.id
	Type      enums.NotificationType `gorm:"type:text;not null" json:"type"`
	Title     string                 `gorm:"type:text;not null" json:"title"`
	Message   string                 `gorm:"type:text;not null" json:"message"`
	IsRead    bool                   `gorm:"column:is_read;not null;default:false" json:"is_read"`
	ActionURL *string                `gorm:"column:action_url" json:"action_url,omitempty"`
	CreatedAt time.Time              `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
