package dbtypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// EngagementMetrics is the per-platform metrics payload recorded for a post,
// stored as a JSON text column.
type EngagementMetrics struct {
	Likes       int64 `json:"likes"`
	Shares      int64 `json:"shares"`
	Comments    int64 `json:"comments"`
	Reach       int64 `json:"reach"`
	Impressions int64 `json:"impressions"`
}

// Scan implements sql.Scanner.
func (m *EngagementMetrics) Scan(src any) error {
	if src == nil {
		*m = EngagementMetrics{}
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("EngagementMetrics: unsupported Scan type %T", src)
	}

	if len(raw) == 0 {
		*m = EngagementMetrics{}
		return nil
	}
	if err := json.Unmarshal(raw, m); err != nil {
		return fmt.Errorf("EngagementMetrics: parse %q: %w", raw, err)
	}
	return nil
}

// Value implements driver.Valuer.
func (m EngagementMetrics) Value() (driver.Value, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("EngagementMetrics: marshal: %w", err)
	}
	return string(raw), nil
}
