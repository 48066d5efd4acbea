package api

import (
	"context"
	"net/http"
)

// Health states
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// HealthStatus reports backend reachability. Details holds the fields of
// the backend's health body.
type HealthStatus struct {
	Status  string         `json:"status"`
	Error   string         `json:"error,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// HealthCheck asks the backend for its status. It never fails; an unreachable or
// failing backend is reported as offline.
func (c *Client) HealthCheck(ctx context.Context) HealthStatus {
	var details map[string]any
	if err := c.exec.execute(ctx, http.MethodGet, "/health", nil, &details); err != nil {
		return HealthStatus{Status: StatusOffline, Error: err.Error()}
	}
	return HealthStatus{Status: StatusOnline, Details: details}
}
