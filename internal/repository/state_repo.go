package repository

import (
	"database/sql"
	"errors"

	"wordadventure/internal/database"
)

// Keys of the client_state table
const (
	KeyCurrentUser = "currentUser"
	KeyAuthToken   = "admin_token"
)

// StateRepository reads and writes client_state rows
type StateRepository struct {
	db database.DBTX
}

func NewStateRepository(db database.DBTX) *StateRepository {
	return &StateRepository{db: db}
}

// Get retrieves a value by key. found is false when the key is absent.
func (r *StateRepository) Get(key string) (value string, found bool, err error) {
	query := `SELECT state_value FROM client_state WHERE state_key = ?`
	err = r.db.QueryRow(query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set updates or inserts a value
func (r *StateRepository) Set(key, value string) error {
	_, err := r.db.Exec(r.db.GetDialect().UpsertStateQuery(), key, value)
	return err
}

// Delete removes the given keys; missing keys are ignored
func (r *StateRepository) Delete(keys ...string) error {
	for _, key := range keys {
		if _, err := r.db.Exec(`DELETE FROM client_state WHERE state_key = ?`, key); err != nil {
			return err
		}
	}
	return nil
}
