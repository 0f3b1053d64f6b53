package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

// ListNotifications returns the caller's notifications, newest first.
func (g *Gateway) ListNotifications(ctx context.Context, filters NotificationFilters) ([]Notification, error) {
	query := url.Values{}
	if filters.Type != "" {
		query.Set("type", filters.Type)
	}
	if filters.UnreadOnly {
		query.Set("unread", "true")
	}

	var out []Notification
	if err := g.do(ctx, http.MethodGet, "/api/notifications/", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkNotificationRead flags one notification as read.
func (g *Gateway) MarkNotificationRead(ctx context.Context, notificationID uuid.UUID) error {
	return g.do(ctx, http.MethodPost, "/api/notifications/"+notificationID.String()+"/read", nil, nil, nil)
}

// MarkAllNotificationsRead flags every unread notification as read and
// returns how many were updated.
func (g *Gateway) MarkAllNotificationsRead(ctx context.Context) (int64, error) {
	var out struct {
		Updated int64 `json:"updated"`
	}
	if err := g.do(ctx, http.MethodPost, "/api/notifications/read-all", nil, nil, &out); err != nil {
		return 0, err
	}
	return out.Updated, nil
}

// ListActivity returns audit entries matching the filters, newest first.
func (g *Gateway) ListActivity(ctx context.Context, filters ActivityFilters) ([]ActivityEntry, error) {
	query := url.Values{}
	if filters.UserID != uuid.Nil {
		query.Set("user_id", filters.UserID.String())
	}
	if filters.EntityType != "" {
		query.Set("entity_type", filters.EntityType)
	}
	if filters.Action != "" {
		query.Set("action", filters.Action)
	}

	var out []ActivityEntry
	if err := g.do(ctx, http.MethodGet, "/api/activity/", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
