package dbtypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringArray stores a list of strings as a JSON text column so the same model
// works on both the postgres and sqlite drivers.
type StringArray []string

// Scan implements sql.Scanner.
func (a *StringArray) Scan(src any) error {
	if src == nil {
		*a = StringArray{}
		return nil
	}

	switch v := src.(type) {
	case string:
		return a.parse([]byte(v))
	case []byte:
		return a.parse(v)
	default:
		return fmt.Errorf("StringArray: unsupported Scan type %T", src)
	}
}

// Value implements driver.Valuer.
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal([]string(a))
	if err != nil {
		return nil, fmt.Errorf("StringArray: marshal: %w", err)
	}
	return string(raw), nil
}

func (a *StringArray) parse(raw []byte) error {
	if len(raw) == 0 {
		*a = StringArray{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("StringArray: parse %q: %w", raw, err)
	}
	if out == nil {
		out = []string{}
	}
	*a = StringArray(out)
	return nil
}
