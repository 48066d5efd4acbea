package models

import "time"

// Event is an analytics event
type Event struct {
	Type      string         `json:"event_type"`
	UserID    int64          `json:"user_id,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}
