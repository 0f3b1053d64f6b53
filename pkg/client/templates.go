package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// CreateTemplate saves a reusable content template.
func (g *Gateway) CreateTemplate(ctx context.Context, input CreateTemplateInput) (*Template, error) {
	var out Template
	if err := g.do(ctx, http.MethodPost, "/api/templates/", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTemplates returns templates matching the filters.
func (g *Gateway) ListTemplates(ctx context.Context, filters TemplateFilters) ([]Template, error) {
	query := url.Values{}
	if filters.TeamID != uuid.Nil {
		query.Set("team_id", filters.TeamID.String())
	}
	if filters.Type != "" {
		query.Set("type", filters.Type)
	}
	if filters.Category != "" {
		query.Set("category", filters.Category)
	}
	if filters.IsPublic != nil {
		query.Set("is_public", strconv.FormatBool(*filters.IsPublic))
	}

	var out []Template
	if err := g.do(ctx, http.MethodGet, "/api/templates/", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTemplate fetches one template by ID.
func (g *Gateway) GetTemplate(ctx context.Context, templateID uuid.UUID) (*Template, error) {
	var out Template
	if err := g.do(ctx, http.MethodGet, "/api/templates/"+templateID.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTemplate applies partial changes to a template.
func (g *Gateway) UpdateTemplate(ctx context.Context, templateID uuid.UUID, input UpdateTemplateInput) (*Template, error) {
	var out Template
	if err := g.do(ctx, http.MethodPut, "/api/templates/"+templateID.String(), nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTemplate removes a template.
func (g *Gateway) DeleteTemplate(ctx context.Context, templateID uuid.UUID) error {
	return g.do(ctx, http.MethodDelete, "/api/templates/"+templateID.String(), nil, nil, nil)
}

// UseTemplate records one use of the template, bumping its usage counter.
func (g *Gateway) UseTemplate(ctx context.Context, templateID uuid.UUID) error {
	return g.do(ctx, http.MethodPost, "/api/templates/"+templateID.String()+"/use", nil, nil, nil)
}
