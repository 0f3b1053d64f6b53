package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// ConnectAccount links a social platform account to a team. Tokens are
// encrypted at rest server-side and never echoed back.
func (g *Gateway) ConnectAccount(ctx context.Context, input ConnectAccountInput) (*SocialAccount, error) {
	var out SocialAccount
	if err := g.do(ctx, http.MethodPost, "/api/social-accounts/connect", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAccounts returns connected social accounts matching the filters.
func (g *Gateway) ListAccounts(ctx context.Context, filters AccountFilters) ([]SocialAccount, error) {
	query := url.Values{}
	if filters.TeamID != uuid.Nil {
		query.Set("team_id", filters.TeamID.String())
	}
	if filters.Platform != "" {
		query.Set("platform", filters.Platform)
	}
	if filters.IsActive != nil {
		query.Set("is_active", strconv.FormatBool(*filters.IsActive))
	}

	var out []SocialAccount
	if err := g.do(ctx, http.MethodGet, "/api/social-accounts/", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAccount fetches one connected account by ID.
func (g *Gateway) GetAccount(ctx context.Context, accountID uuid.UUID) (*SocialAccount, error) {
	var out SocialAccount
	if err := g.do(ctx, http.MethodGet, "/api/social-accounts/"+accountID.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DisconnectAccount deactivates a connected account.
func (g *Gateway) DisconnectAccount(ctx context.Context, accountID uuid.UUID) error {
	return g.do(ctx, http.MethodPost, "/api/social-accounts/"+accountID.String()+"/disconnect", nil, nil, nil)
}
