package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/socialai/socialai-backend/pkg/enums"
)

// Document is uploaded reference material used to ground AI generation.
// Either Content (inline text) or FileURL (uploaded file) is set.
type Document struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string             `gorm:"type:text;not null" json:"name"`
	Type        enums.DocumentType `gorm:"type:text;not null" json:"type"`
	Content     *string            `gorm:"type:text" json:"content,omitempty"`
	FileURL     *string            `gorm:"column:file_url" json:"file_url,omitempty"`
	UploadedBy  uuid.UUID          `gorm:"column:uploaded_by;type:uuid;not null" json:"uploaded_by"` // -> users.id
	TeamID      uuid.UUID          `gorm:"column:team_id;type:uuid;not null;index" json:"team_id"`   // -> teams.id
	IsProcessed bool               `gorm:"column:is_processed;not null;default:false" json:"is_processed"`
	AISummary   *string            `gorm:"column:ai_summary" json:"ai_summary,omitempty"`
	CreatedAt   time.Time          `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time          `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
