package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// CreateEvent puts an entry on the content calendar.
func (g *Gateway) CreateEvent(ctx context.Context, input CreateEventInput) (*CalendarEvent, error) {
	var out CalendarEvent
	if err := g.do(ctx, http.MethodPost, "/api/calendar/events/", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListEvents returns calendar events matching the filters. Start and End
// bound the range when set.
func (g *Gateway) ListEvents(ctx context.Context, filters EventFilters) ([]CalendarEvent, error) {
	query := url.Values{}
	if filters.TeamID != uuid.Nil {
		query.Set("team_id", filters.TeamID.String())
	}
	if filters.PostID != uuid.Nil {
		query.Set("post_id", filters.PostID.String())
	}
	if filters.Type != "" {
		query.Set("type", filters.Type)
	}
	if !filters.Start.IsZero() {
		query.Set("start", filters.Start.Format(time.RFC3339))
	}
	if !filters.End.IsZero() {
		query.Set("end", filters.End.Format(time.RFC3339))
	}

	var out []CalendarEvent
	if err := g.do(ctx, http.MethodGet, "/api/calendar/events/", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetEvent fetches one calendar event by ID.
func (g *Gateway) GetEvent(ctx context.Context, eventID uuid.UUID) (*CalendarEvent, error) {
	var out CalendarEvent
	if err := g.do(ctx, http.MethodGet, "/api/calendar/events/"+eventID.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEvent applies partial changes to a calendar event.
func (g *Gateway) UpdateEvent(ctx context.Context, eventID uuid.UUID, input UpdateEventInput) (*CalendarEvent, error) {
	var out CalendarEvent
	if err := g.do(ctx, http.MethodPut, "/api/calendar/events/"+eventID.String(), nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEvent removes a calendar event.
func (g *Gateway) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	return g.do(ctx, http.MethodDelete, "/api/calendar/events/"+eventID.String(), nil, nil, nil)
}
