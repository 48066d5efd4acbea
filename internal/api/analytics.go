package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"wordadventure/internal/models"
)

// GetAnalytics fetches the analytics summary. Failures are ignored.
func (c *Client) GetAnalytics(ctx context.Context) Result[json.RawMessage] {
	var resp json.RawMessage
	if err := c.exec.execute(ctx, http.MethodGet, "/analytics", nil, &resp); err != nil {
		log.Printf("Warning: Failed to fetch analytics from API: %v", err)
		return ignored[json.RawMessage](err)
	}
	return remote(resp)
}

// TrackEvent records an analytics event. Failures are dropped.
func (c *Client) TrackEvent(ctx context.Context, event models.Event) Result[struct{}] {
	if event.Timestamp.IsZero() {
		event.Timestamp = c.now().UTC()
	}
	if err := c.exec.execute(ctx, http.MethodPost, "/analytics/events", event, nil); err != nil {
		log.Printf("Warning: Failed to track event via API: %v", err)
		return ignored[struct{}](err)
	}
	return remote(struct{}{})
}
