package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// CreatePost creates a draft post.
func (g *Gateway) CreatePost(ctx context.Context, input CreatePostInput) (*Post, error) {
	var out Post
	if err := g.do(ctx, http.MethodPost, "/api/posts/", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPosts returns posts matching the filters.
func (g *Gateway) ListPosts(ctx context.Context, filters PostFilters) ([]Post, error) {
	query := url.Values{}
	if filters.TeamID != uuid.Nil {
		query.Set("team_id", filters.TeamID.String())
	}
	if filters.CreatedBy != uuid.Nil {
		query.Set("created_by", filters.CreatedBy.String())
	}
	if filters.Status != "" {
		query.Set("status", filters.Status)
	}
	if filters.Type != "" {
		query.Set("type", filters.Type)
	}
	if filters.Platform != "" {
		query.Set("platform", filters.Platform)
	}

	var out []Post
	if err := g.do(ctx, http.MethodGet, "/api/posts/", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPost fetches one post by ID.
func (g *Gateway) GetPost(ctx context.Context, postID uuid.UUID) (*Post, error) {
	var out Post
	if err := g.do(ctx, http.MethodGet, "/api/posts/"+postID.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePost applies partial changes to a draft or scheduled post.
func (g *Gateway) UpdatePost(ctx context.Context, postID uuid.UUID, input UpdatePostInput) (*Post, error) {
	var out Post
	if err := g.do(ctx, http.MethodPut, "/api/posts/"+postID.String(), nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePost removes a post.
func (g *Gateway) DeletePost(ctx context.Context, postID uuid.UUID) error {
	return g.do(ctx, http.MethodDelete, "/api/posts/"+postID.String(), nil, nil, nil)
}

type schedulePostRequest struct {
	ScheduledAt time.Time `json:"scheduled_at"`
}

// SchedulePost moves a post to scheduled at the given time.
func (g *Gateway) SchedulePost(ctx context.Context, postID uuid.UUID, at time.Time) (*Post, error) {
	var out Post
	err := g.do(ctx, http.MethodPost, "/api/posts/"+postID.String()+"/schedule", nil, schedulePostRequest{ScheduledAt: at}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// PublishPost marks a post published immediately.
func (g *Gateway) PublishPost(ctx context.Context, postID uuid.UUID) (*Post, error) {
	var out Post
	if err := g.do(ctx, http.MethodPost, "/api/posts/"+postID.String()+"/publish", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
