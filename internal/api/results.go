package api

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"

	"wordadventure/internal/models"
)

// SaveTestResult submits a finished test. When the request fails the
// result is queued on this device with a generated id and reported as
// saved. The returned error is set only when queuing itself fails.
func (c *Client) SaveTestResult(ctx context.Context, userID int64, data models.TestData) (Result[models.TestResultReceipt], error) {
	var receipt models.TestResultReceipt
	err := c.exec.execute(ctx, http.MethodPost, fmt.Sprintf("/users/%d/test-results", userID), data, &receipt)
	if err == nil {
		return remote(receipt), nil
	}

	id, idErr := uuid.NewV7()
	if idErr != nil {
		id = uuid.New()
	}
	result := models.TestResult{
		TestData:    data,
		ID:          models.FlexibleID(id.String()),
		UserID:      userID,
		CompletedAt: c.now().UTC(),
	}

	pos, storeErr := c.store.AppendOfflineResult(result)
	if storeErr != nil {
		return Result[models.TestResultReceipt]{Err: err}, fmt.Errorf("failed to queue test result: %w", storeErr)
	}
	log.Printf("Warning: Failed to save test result via API, queued offline as #%d: %v", pos, err)

	return degraded(models.TestResultReceipt{Success: true, Result: result}, err), nil
}

// OfflineResults returns the test results queued on this device
func (c *Client) OfflineResults() []models.TestResult {
	return c.store.OfflineResults()
}
