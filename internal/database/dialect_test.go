package database

import (
	"strings"
	"testing"
)

func TestDialectSQLite(t *testing.T) {
	dialect := NewSQLiteDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "sqlite3"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("DSN", func(t *testing.T) {
		tests := []struct {
			path string
			want string
		}{
			{"./state.db", "./state.db?_journal_mode=WAL&_busy_timeout=5000"},
			{"file:state.db?cache=shared", "file:state.db?cache=shared&_journal_mode=WAL&_busy_timeout=5000"},
		}
		for _, tt := range tests {
			if got := dialect.DSN(DialectConfig{Path: tt.path, URL: "ignored"}); got != tt.want {
				t.Errorf("DSN(%q) = %v, want %v", tt.path, got, tt.want)
			}
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		if !dialect.SupportsLastInsertId() {
			t.Error("SupportsLastInsertId() should return true for SQLite")
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		result := dialect.MigrationsSubdir()
		expected := "sqlite"
		if result != expected {
			t.Errorf("MigrationsSubdir() = %v, want %v", result, expected)
		}
	})
}

func TestDialectPostgreSQL(t *testing.T) {
	dialect := NewPostgresDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "postgres"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		if dialect.SupportsLastInsertId() {
			t.Error("SupportsLastInsertId() should return false for PostgreSQL")
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		result := dialect.MigrationsSubdir()
		expected := "postgres"
		if result != expected {
			t.Errorf("MigrationsSubdir() = %v, want %v", result, expected)
		}
	})

	t.Run("UpsertStateQuery uses numbered placeholders after rewrite", func(t *testing.T) {
		result := dialect.RewriteQuery(dialect.UpsertStateQuery())
		if !strings.Contains(result, "VALUES ($1, $2, CURRENT_TIMESTAMP)") {
			t.Errorf("rewritten upsert = %v", result)
		}
	})
}

func TestDialectMySQL(t *testing.T) {
	dialect := NewMySQLDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "mysql"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("SupportsLastInsertId", func(t *testing.T) {
		if !dialect.SupportsLastInsertId() {
			t.Error("SupportsLastInsertId() should return true for MySQL")
		}
	})

	t.Run("MigrationsSubdir", func(t *testing.T) {
		result := dialect.MigrationsSubdir()
		expected := "mysql"
		if result != expected {
			t.Errorf("MigrationsSubdir() = %v, want %v", result, expected)
		}
	})

	t.Run("UpsertStateQuery", func(t *testing.T) {
		if !strings.Contains(dialect.UpsertStateQuery(), "ON DUPLICATE KEY UPDATE") {
			t.Errorf("UpsertStateQuery() = %v", dialect.UpsertStateQuery())
		}
	})
}

func TestMigrationsTableQuery(t *testing.T) {
	tests := []struct {
		dialect Dialect
		want    string
	}{
		{NewSQLiteDialect(), "id INTEGER PRIMARY KEY AUTOINCREMENT"},
		{NewPostgresDialect(), "id BIGSERIAL PRIMARY KEY"},
		{NewMySQLDialect(), "filename VARCHAR(255) UNIQUE NOT NULL"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect.MigrationsSubdir(), func(t *testing.T) {
			if got := tt.dialect.CreateMigrationsTableQuery(); !strings.Contains(got, tt.want) {
				t.Errorf("CreateMigrationsTableQuery() = %v, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestRewriteQuery(t *testing.T) {
	tests := []struct {
		name     string
		dialect  Dialect
		query    string
		expected string
	}{
		{
			name:     "SQLite no change",
			dialect:  NewSQLiteDialect(),
			query:    "SELECT state_value FROM client_state WHERE state_key = ?",
			expected: "SELECT state_value FROM client_state WHERE state_key = ?",
		},
		{
			name:     "PostgreSQL single placeholder",
			dialect:  NewPostgresDialect(),
			query:    "SELECT state_value FROM client_state WHERE state_key = ?",
			expected: "SELECT state_value FROM client_state WHERE state_key = $1",
		},
		{
			name:     "PostgreSQL multiple placeholders",
			dialect:  NewPostgresDialect(),
			query:    "INSERT INTO offline_test_results (result_id, user_id, payload) VALUES (?, ?, ?)",
			expected: "INSERT INTO offline_test_results (result_id, user_id, payload) VALUES ($1, $2, $3)",
		},
		{
			name:     "MySQL no change",
			dialect:  NewMySQLDialect(),
			query:    "DELETE FROM client_state WHERE state_key = ?",
			expected: "DELETE FROM client_state WHERE state_key = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.dialect.RewriteQuery(tt.query)
			if result != tt.expected {
				t.Errorf("RewriteQuery() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestEmbeddedMigrationsPerDialect(t *testing.T) {
	for _, dialect := range []Dialect{NewSQLiteDialect(), NewPostgresDialect(), NewMySQLDialect()} {
		t.Run(dialect.MigrationsSubdir(), func(t *testing.T) {
			entries, err := embeddedMigrations.ReadDir("migrations/" + dialect.MigrationsSubdir())
			if err != nil {
				t.Fatalf("ReadDir() error = %v", err)
			}
			if len(entries) != 2 {
				t.Errorf("got %d migration files, want 2", len(entries))
			}
		})
	}
}
