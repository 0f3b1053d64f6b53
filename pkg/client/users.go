package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
)

// Me fetches the caller's own profile.
func (g *Gateway) Me(ctx context.Context) (*User, error) {
	var out User
	if err := g.do(ctx, http.MethodGet, "/api/users/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile applies partial changes to the caller's own profile.
func (g *Gateway) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*User, error) {
	var out User
	if err := g.do(ctx, http.MethodPut, "/api/users/me", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUsers returns users matching the filters.
func (g *Gateway) ListUsers(ctx context.Context, filters UserFilters) ([]User, error) {
	query := url.Values{}
	if filters.Role != "" {
		query.Set("role", filters.Role)
	}
	if filters.Company != "" {
		query.Set("company", filters.Company)
	}
	if filters.IsActive != nil {
		query.Set("is_active", strconv.FormatBool(*filters.IsActive))
	}

	var out []User
	if err := g.do(ctx, http.MethodGet, "/api/users/", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetUser fetches one user by ID.
func (g *Gateway) GetUser(ctx context.Context, userID uuid.UUID) (*User, error) {
	var out User
	if err := g.do(ctx, http.MethodGet, "/api/users/"+userID.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeactivateUser soft-disables an account. Admin only.
func (g *Gateway) DeactivateUser(ctx context.Context, userID uuid.UUID) error {
	return g.do(ctx, http.MethodDelete, "/api/users/"+userID.String(), nil, nil, nil)
}
