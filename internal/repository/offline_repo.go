package repository

import (
	"encoding/json"
	"fmt"

	"wordadventure/internal/database"
	"wordadventure/internal/models"
)

// OfflineResultRepository handles the offline test result queue
type OfflineResultRepository struct {
	db database.DBTX
}

// NewOfflineResultRepository creates a new offline result repository
func NewOfflineResultRepository(db database.DBTX) *OfflineResultRepository {
	return &OfflineResultRepository{db: db}
}

// Append adds a result to the end of the queue and returns its queue position
func (r *OfflineResultRepository) Append(result models.TestResult) (int64, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return 0, fmt.Errorf("failed to encode test result: %w", err)
	}

	query := `
		INSERT INTO offline_test_results (result_id, user_id, payload)
		VALUES (?, ?, ?)
	`
	return r.db.ExecReturningID(query, string(result.ID), result.UserID, string(payload))
}

// List returns every queued result in insertion order
func (r *OfflineResultRepository) List() ([]models.TestResult, error) {
	query := `
		SELECT payload
		FROM offline_test_results
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.TestResult
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var result models.TestResult
		if err := json.Unmarshal([]byte(payload), &result); err != nil {
			return nil, fmt.Errorf("failed to decode queued test result: %w", err)
		}
		results = append(results, result)
	}

	return results, rows.Err()
}
