package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// CreateTeam creates a team; the caller becomes its admin member.
func (g *Gateway) CreateTeam(ctx context.Context, input CreateTeamInput) (*Team, error) {
	var out Team
	if err := g.do(ctx, http.MethodPost, "/api/teams/", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTeams returns teams matching the filters.
func (g *Gateway) ListTeams(ctx context.Context, filters TeamFilters) ([]Team, error) {
	query := url.Values{}
	if filters.CompanyID != "" {
		query.Set("company_id", filters.CompanyID)
	}
	if filters.CreatedBy != uuid.Nil {
		query.Set("created_by", filters.CreatedBy.String())
	}

	var out []Team
	if err := g.do(ctx, http.MethodGet, "/api/teams/", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTeam fetches one team by ID.
func (g *Gateway) GetTeam(ctx context.Context, teamID uuid.UUID) (*Team, error) {
	var out Team
	if err := g.do(ctx, http.MethodGet, "/api/teams/"+teamID.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTeam applies partial changes to a team.
func (g *Gateway) UpdateTeam(ctx context.Context, teamID uuid.UUID, input UpdateTeamInput) (*Team, error) {
	var out Team
	if err := g.do(ctx, http.MethodPut, "/api/teams/"+teamID.String(), nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTeam removes a team and its memberships.
func (g *Gateway) DeleteTeam(ctx context.Context, teamID uuid.UUID) error {
	return g.do(ctx, http.MethodDelete, "/api/teams/"+teamID.String(), nil, nil, nil)
}

// ListTeamMembers returns the team's membership roster.
func (g *Gateway) ListTeamMembers(ctx context.Context, teamID uuid.UUID) ([]TeamMember, error) {
	var out []TeamMember
	if err := g.do(ctx, http.MethodGet, "/api/teams/"+teamID.String()+"/members", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddTeamMember adds a user to the team.
func (g *Gateway) AddTeamMember(ctx context.Context, teamID uuid.UUID, input AddMemberInput) (*TeamMember, error) {
	var out TeamMember
	if err := g.do(ctx, http.MethodPost, "/api/teams/"+teamID.String()+"/members", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RemoveTeamMember drops a user from the team.
func (g *Gateway) RemoveTeamMember(ctx context.Context, teamID, userID uuid.UUID) error {
	return g.do(ctx, http.MethodDelete, "/api/teams/"+teamID.String()+"/members/"+userID.String(), nil, nil, nil)
}
