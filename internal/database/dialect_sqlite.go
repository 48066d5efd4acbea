package database

import (
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDialect is the device-local store
type SQLiteDialect struct{}

func NewSQLiteDialect() *SQLiteDialect {
	return &SQLiteDialect{}
}

func (d *SQLiteDialect) DriverName() string { return "sqlite3" }

// DSN enables WAL and a busy timeout through go-sqlite3 connection parameters
func (d *SQLiteDialect) DSN(config DialectConfig) string {
	sep := "?"
	if strings.Contains(config.Path, "?") {
		sep = "&"
	}
	return config.Path + sep + "_journal_mode=WAL&_busy_timeout=5000"
}

func (d *SQLiteDialect) RewriteQuery(query string) string { return query }

func (d *SQLiteDialect) SupportsLastInsertId() bool { return true }

// ConfigureConnection pins the pool to one connection. Store transactions
// must not issue statements outside the transaction.
func (d *SQLiteDialect) ConfigureConnection(db *sql.DB) error {
	db.SetMaxOpenConns(1)
	return nil
}

func (d *SQLiteDialect) MigrationsSubdir() string { return "sqlite" }

func (d *SQLiteDialect) CreateMigrationsTableQuery() string {
	return migrationsTableDDL("INTEGER PRIMARY KEY AUTOINCREMENT", "TEXT", "DATETIME DEFAULT CURRENT_TIMESTAMP")
}

func (d *SQLiteDialect) UpsertStateQuery() string { return upsertStateOnConflict }
