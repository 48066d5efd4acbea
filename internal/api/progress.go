package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"wordadventure/internal/models"
	"wordadventure/internal/store"
)

// GetUserProgress fetches a user's progress. A failed request yields no
// value and OutcomeIgnored.
func (c *Client) GetUserProgress(ctx context.Context, userID int64) Result[*models.Progress] {
	var progress models.Progress
	if err := c.exec.execute(ctx, http.MethodGet, fmt.Sprintf("/users/%d/progress", userID), nil, &progress); err != nil {
		log.Printf("Warning: Failed to fetch user progress from API: %v", err)
		return ignored[*models.Progress](err)
	}
	return remote(&progress)
}

// UpdateUserProgress writes progress to the backend. When the request
// fails and the cached session belongs to userID, the update is merged
// into it locally and the outcome is OutcomeDegraded.
func (c *Client) UpdateUserProgress(ctx context.Context, userID int64, update models.ProgressUpdate) Result[json.RawMessage] {
	var resp json.RawMessage
	err := c.exec.execute(ctx, http.MethodPut, fmt.Sprintf("/users/%d/progress", userID), update, &resp)
	if err == nil {
		return remote(resp)
	}
	log.Printf("Warning: Failed to update user progress via API: %v", err)

	merged := false
	storeErr := c.store.UpdateCurrent(func(s *models.Session) bool {
		if s.ID != userID {
			return false
		}
		s.ApplyProgress(update)
		merged = true
		return true
	})
	if storeErr != nil && !errors.Is(storeErr, store.ErrNoSession) {
		log.Printf("Warning: failed to merge progress into cached session: %v", storeErr)
		return ignored[json.RawMessage](errors.Join(err, storeErr))
	}
	if !merged {
		return ignored[json.RawMessage](err)
	}
	return degraded[json.RawMessage](nil, err)
}
