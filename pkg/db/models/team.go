package models

import (
	"time"

	"github.com/google/uuid"
)

// Team is the ownership boundary for all team-scoped content.
type Team struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	CompanyID   string    `gorm:"column:company_id;type:text;not null"`
	CreatedBy   uuid.UUID `gorm:"column:created_by;type:uuid;not null"` // -> users.id
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
