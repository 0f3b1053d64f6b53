package socialaccounts

import (
	"time"

	"github.com/google/uuid"

	"github.com/socialai/socialai-backend/pkg/db/models"
	"github.com/socialai/socialai-backend/pkg/enums"
)

// AccountDTO is the outward shape of a connected account. Sealed tokens never
// leave the service.
type AccountDTO struct {
	ID             uuid.UUID      `json:"id"`
	Platform       enums.Platform `json:"platform"`
	AccountID      string         `json:"account_id"`
	Username       string         `json:"username"`
	DisplayName    *string        `json:"display_name,omitempty"`
	TokenExpiresAt *time.Time     `json:"token_expires_at,omitempty"`
	IsActive       bool           `json:"is_active"`
	ConnectedBy    uuid.UUID      `json:"connected_by"`
	TeamID         uuid.UUID      `json:"team_id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// ConnectAccountDTO holds the fields accepted when connecting an account.
// Tokens arrive in plaintext and are sealed before persistence.
type ConnectAccountDTO struct {
	Platform       enums.Platform `json:"platform" validate:"required"`
	AccountID      string         `json:"account_id" validate:"required"`
	Username       string         `json:"username" validate:"required"`
	DisplayName    *string        `json:"display_name"`
	AccessToken    string         `json:"access_token" validate:"required"`
	RefreshToken   *string        `json:"refresh_token"`
	TokenExpiresAt *time.Time     `json:"token_expires_at"`
	TeamID         uuid.UUID      `json:"team_id" validate:"required"`
}

// ToDTO strips sealed credentials from a stored account.
func ToDTO(account *models.SocialAccount) *AccountDTO {
	if account == nil {
		return nil
	}
	return &AccountDTO{
		ID:             account.ID,
		Platform:       account.Platform,
		AccountID:      account.AccountID,
		Username:       account.Username,
		DisplayName:    account.DisplayName,
		TokenExpiresAt: account.TokenExpiresAt,
		IsActive:       account.IsActive,
		ConnectedBy:    account.ConnectedBy,
		TeamID:         account.TeamID,
		CreatedAt:      account.CreatedAt,
		UpdatedAt:      account.UpdatedAt,
	}
}

// ToDTOs maps a stored slice.
func ToDTOs(accounts []models.SocialAccount) []AccountDTO {
	out := make([]AccountDTO, 0, len(accounts))
	for i := range accounts {
		out = append(out, *ToDTO(&accounts[i]))
	}
	return out
}
