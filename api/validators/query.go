package validators

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/socialai/socialai-backend/pkg/errors"
)

// QueryString returns a trimmed query parameter, empty when absent.
func QueryString(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// QueryUUID parses an optional uuid query parameter. Absence yields uuid.Nil.
func QueryUUID(r *http.Request, key string) (uuid.UUID, error) {
	raw := QueryString(r, key)
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be a uuid").
			WithDetails(map[string]any{"field": key})
	}
	return id, nil
}

// QueryBool parses an optional boolean query parameter. Absence yields nil.
func QueryBool(r *http.Request, key string) (*bool, error) {
	raw := QueryString(r, key)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be a boolean").
			WithDetails(map[string]any{"field": key})
	}
	return &value, nil
}

// QueryTime parses an optional RFC 3339 timestamp, falling back to a plain
// date. Absence yields the zero time.
func QueryTime(r *http.Request, key string) (time.Time, error) {
	raw := QueryString(r, key)
	if raw == "" {
		return time.Time{}, nil
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, nil
	}
	if ts, err := time.Parse("2006-01-02", raw); err == nil {
		return ts, nil
	}
	return time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be a timestamp").
		WithDetails(map[string]any{"field": key})
}

// PathUUID parses a required uuid path segment.
func PathUUID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "path parameter must be a uuid").
			WithDetails(map[string]any{"field": field})
	}
	return id, nil
}
