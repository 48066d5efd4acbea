package database

import (
	"errors"
	"path/filepath"
	"testing"

	"wordadventure/internal/config"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db, err := Initialize(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations(); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

// TestDatabaseIntegration tests the complete database lifecycle
func TestDatabaseIntegration(t *testing.T) {
	db := openTestDB(t)

	tables := []string{"migrations", "client_state", "offline_test_results"}
	for _, table := range tables {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("Table %s not found: %v", table, err)
		}
	}

	// A second run must be a no-op
	if err := db.RunMigrations(); err != nil {
		t.Fatalf("Second migration run failed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count); err != nil {
		t.Fatalf("Failed to count migrations: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 recorded migrations, got %d", count)
	}
}

func TestUpsertState(t *testing.T) {
	db := openTestDB(t)

	for _, value := range []string{"first", "second"} {
		if _, err := db.Exec(db.Dialect.UpsertStateQuery(), "admin_token", value); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
	}

	var value string
	if err := db.QueryRow("SELECT state_value FROM client_state WHERE state_key = ?", "admin_token").Scan(&value); err != nil {
		t.Fatalf("Failed to read state: %v", err)
	}
	if value != "second" {
		t.Errorf("state_value = %v, want second", value)
	}
}

func TestExecReturningID(t *testing.T) {
	db := openTestDB(t)

	var last int64
	for i, resultID := range []string{"a", "b", "c"} {
		id, err := db.ExecReturningID("INSERT INTO offline_test_results (result_id, user_id, payload) VALUES (?, ?, ?)", resultID, 1, "{}")
		if err != nil {
			t.Fatalf("insert %d failed: %v", i, err)
		}
		if id <= last {
			t.Errorf("id %d not greater than previous %d", id, last)
		}
		last = id
	}
}

// TestDatabaseTransactions tests transaction support
func TestDatabaseTransactions(t *testing.T) {
	db := openTestDB(t)

	err := db.WithTx(func(tx *Tx) error {
		_, err := tx.Exec(tx.GetDialect().UpsertStateQuery(), "currentUser", "{}")
		return err
	})
	if err != nil {
		t.Fatalf("Committed transaction failed: %v", err)
	}

	rollback := errors.New("rollback")
	err = db.WithTx(func(tx *Tx) error {
		if _, err := tx.Exec("DELETE FROM client_state WHERE state_key = ?", "currentUser"); err != nil {
			return err
		}
		return rollback
	})
	if !errors.Is(err, rollback) {
		t.Fatalf("WithTx() error = %v, want %v", err, rollback)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM client_state WHERE state_key = ?", "currentUser").Scan(&count); err != nil {
		t.Fatalf("Failed to query after rollback: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected row to survive rollback, got %d rows", count)
	}
}

func TestInitializeWithConfigRejectsUnknownType(t *testing.T) {
	_, err := InitializeWithConfig(&config.Config{StoreType: "mongodb"})
	if err == nil {
		t.Fatal("expected error for unsupported store type")
	}
}
