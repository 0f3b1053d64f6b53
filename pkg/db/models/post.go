package models

import (
	"time"

	"github.com/google/uuid"

	dbtypes "github.com/socialai/socialai-backend/pkg/db/types"
	"github.com/socialai/socialai-backend/pkg/enums"
)

// Post is a piece of social content moving through the draft -> scheduled ->
// published lifecycle.
//
// Invariants held by the posts service:
//   - ScheduledAt set  => Status == scheduled
//   - PublishedAt set  => Status == published
//   - Platforms non-empty whenever Status != draft
type Post struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Title       string              `gorm:"type:text;not null"`
	Content     string              `gorm:"type:text;not null"`
	Type        enums.PostType      `gorm:"type:text;not null;default:'text'"`
	Status      enums.PostStatus    `gorm:"type:text;not null;default:'draft';index"`
	Platforms   dbtypes.StringArray `gorm:"type:text;not null;default:'[]'"`
	ScheduledAt *time.Time          `gorm:"column:scheduled_at;index"`
	PublishedAt *time.Time          `gorm:"column:published_at"`
	CreatedBy   uuid.UUID           `gorm:"column:created_by;type:uuid;not null"`   // -> users.id
	TeamID      uuid.UUID           `gorm:"column:team_id;type:uuid;not null;index"` // -> teams.id
	AIGenerated bool                `gorm:"column:ai_generated;not null;default:false"`
	AIPrompt    *string             `gorm:"column:ai_prompt"`
	MediaURLs   dbtypes.StringArray `gorm:"column:media_urls;type:text;not null;default:'[]'"`
	Hashtags    dbtypes.StringArray `gorm:"type:text;not null;default:'[]'"`
	Mentions    dbtypes.StringArray `gorm:"type:text;not null;default:'[]'"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
