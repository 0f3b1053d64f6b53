package models

import (
	"time"

	"github.com/google/uuid"

	dbtypes "github.com/socialai/socialai-backend/pkg/db/types"
	"github.com/socialai/socialai-backend/pkg/enums"
)

// Template is a reusable content blueprint. UsageCount increments each time a
// post is created from it.
type Template struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string              `gorm:"type:text;not null" json:"name"`
	Description string              `gorm:"type:text;not null;default:''" json:"description"`
	Content     string              `gorm:"type:text;not null" json:"content"`
	Type        enums.TemplateType  `gorm:"type:text;not null;default:'post'" json:"type"`
	Category    string              `gorm:"type:text;not null;default:''" json:"category"`
	Platforms   dbtypes.StringArray `gorm:"type:text;not null;default:'[]'" json:"platforms"`
	CreatedBy   uuid.UUID           `gorm:"column:created_by;type:uuid;not null" json:"created_by"`    // -> users.id
	TeamID      uuid.UUID           `gorm:"column:team_id;type:uuid;not null;index" json:"team_id"`    // -> teams.id
	IsPublic    bool                `gorm:"column:is_public;not null;default:false" json:"is_public"`
	UsageCount  int64               `gorm:"column:usage_count;not null;default:0" json:"usage_count"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
