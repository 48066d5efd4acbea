package database

import (
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Dialect hides the differences between the stores the client can persist to.
// Queries are written with ? placeholders and passed through RewriteQuery.
type Dialect interface {
	DriverName() string
	DSN(config DialectConfig) string
	RewriteQuery(query string) string
	// SupportsLastInsertId reports whether Result.LastInsertId works for the driver
	SupportsLastInsertId() bool
	ConfigureConnection(db *sql.DB) error
	MigrationsSubdir() string
	CreateMigrationsTableQuery() string
	// UpsertStateQuery inserts or replaces a client_state row; args are key, value
	UpsertStateQuery() string
}

// DialectConfig locates the store: Path for SQLite, URL for server stores
type DialectConfig struct {
	Path string
	URL  string
}

// sharedPool sizes the pool for server-backed stores. One client issues
// one statement at a time, so a couple of connections suffice.
type sharedPool struct{}

func (sharedPool) ConfigureConnection(db *sql.DB) error {
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxIdleTime(time.Minute)
	return nil
}

func migrationsTableDDL(idColumn, filenameType, executedAtColumn string) string {
	return fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS migrations (
			id %s,
			filename %s UNIQUE NOT NULL,
			executed_at %s
		)`, idColumn, filenameType, executedAtColumn)
}

var placeholderRegexp = regexp.MustCompile(`\?`)

func rewritePlaceholdersToNumbered(query string) string {
	counter := 0
	return placeholderRegexp.ReplaceAllStringFunc(query, func(match string) string {
		counter++
		return "$" + strconv.Itoa(counter)
	})
}

// upsertStateOnConflict is shared by SQLite and PostgreSQL
const upsertStateOnConflict = `
	INSERT INTO client_state (state_key, state_value, updated_at)
	VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT (state_key) DO UPDATE
	SET state_value = excluded.state_value, updated_at = CURRENT_TIMESTAMP
`
