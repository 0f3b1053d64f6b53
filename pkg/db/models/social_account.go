package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/socialai/socialai-backend/pkg/enums"
)

// SocialAccount holds the connection to an external platform account.
// AccessToken and RefreshToken are sealed with the vault key before they ever
// reach this struct; the plaintext is never persisted.
type SocialAccount struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Platform       enums.Platform `gorm:"type:text;not null"`
	AccountID      string         `gorm:"column:account_id;type:text;not null"`
	Username       string         `gorm:"type:text;not null"`
	DisplayName    *string        `gorm:"column:display_name"`
	AccessToken    string         `gorm:"column:access_token;not null"`
	RefreshToken   *string        `gorm:"column:refresh_token"`
	TokenExpiresAt *time.Time     `gorm:"column:token_expires_at"`
	IsActive       bool           `gorm:"column:is_active;not null;default:true"`
	ConnectedBy    uuid.UUID      `gorm:"column:connected_by;type:uuid;not null"`  // -> users.id
	TeamID         uuid.UUID      `gorm:"column:team_id;type:uuid;not null;index"` // -> teams.id
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
