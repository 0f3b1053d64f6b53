package models

import (
	"time"

	"github.com/google/uuid"

	dbtypes "github.com/socialai/socialai-backend/pkg/db/types"
	"github.com/socialai/socialai-backend/pkg/enums"
)

// Analytics is an append-only engagement snapshot for a post on one platform.
// Rows are never updated or deleted once written.
type Analytics struct {
	ID         uuid.UUID                 `gorm:"type:uuid;primaryKey" json:"id"`
	PostID     uuid.UUID                 `gorm:"column:post_id;type:uuid;not null;index" json:"post_id"` // -> posts.id
	Platform   enums.Platform            `gorm:"type:text;not null" json:"platform"`
	Metrics    dbtypes.EngagementMetrics `gorm:"type:text;not null;default:'{}'" json:"metrics"`
	RecordedAt time.Time                 `gorm:"column:recorded_at;not null;index" json:"recorded_at"`
	CreatedAt  time.Time                 `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName keeps the storage name aligned with the schema contract.
func (Analytics) TableName() string {
	return "analytics"
}
