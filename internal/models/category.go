package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Category is a word category. The backend sends either a plain label
// or an object with id and name; both decode into this type.
type Category struct {
	ID   FlexibleID `json:"id,omitempty"`
	Name string     `json:"name"`
}

// UnmarshalJSON accepts "label" as well as {"id": ..., "name": "..."}
func (c *Category) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var label string
		if err := json.Unmarshal(data, &label); err != nil {
			return err
		}
		*c = Category{Name: label}
		return nil
	}

	type plain Category
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("category: %w", err)
	}
	*c = Category(p)
	return nil
}

// Label returns the display name of the category
func (c Category) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return string(c.ID)
}
