package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringSlice stores a list of strings as a JSON encoded text column so it
// works the same on sqlite, mysql and postgres.
type StringSlice []string

// Value implements driver.Valuer.
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}

	out, err := json.Marshal(s)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return string(out), nil
}

// Scan implements sql.Scanner.
func (s *StringSlice) Scan(value any) error {
	if value == nil {
		*s = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s) //nolint: wrapcheck
	case string:
		return json.Unmarshal([]byte(v), s) //nolint: wrapcheck
	default:
		return fmt.Errorf("unsupported type %T for StringSlice", value)
	}
}
