package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexibleID is an identifier that may arrive as a JSON number or a JSON string.
// It is always held and re-encoded as a string.
type FlexibleID string

// UnmarshalJSON accepts 42, "42" and "0190f0c4-..." alike
func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = FlexibleID(n.String())
	return nil
}
