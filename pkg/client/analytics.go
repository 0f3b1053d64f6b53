package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// RecordAnalytics appends an engagement snapshot for a published post.
func (g *Gateway) RecordAnalytics(ctx context.Context, input RecordAnalyticsInput) (*AnalyticsRow, error) {
	var out AnalyticsRow
	if err := g.do(ctx, http.MethodPost, "/api/analytics/", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PostAnalytics returns the snapshots recorded for one post, optionally
// narrowed to a platform.
func (g *Gateway) PostAnalytics(ctx context.Context, postID uuid.UUID, platform string) ([]AnalyticsRow, error) {
	query := url.Values{}
	if platform != "" {
		query.Set("platform", platform)
	}

	var out []AnalyticsRow
	if err := g.do(ctx, http.MethodGet, "/api/analytics/posts/"+postID.String(), query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DashboardAnalytics returns the aggregate dashboard for a team.
func (g *Gateway) DashboardAnalytics(ctx context.Context, teamID uuid.UUID) (*Dashboard, error) {
	query := url.Values{}
	if teamID != uuid.Nil {
		query.Set("team_id", teamID.String())
	}

	var out Dashboard
	if err := g.do(ctx, http.MethodGet, "/api/analytics/dashboard", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
