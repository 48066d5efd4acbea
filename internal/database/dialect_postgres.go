package database

import (
	_ "github.com/lib/pq"
)

// PostgresDialect keeps client state on a shared PostgreSQL server
type PostgresDialect struct {
	sharedPool
}

func NewPostgresDialect() *PostgresDialect {
	return &PostgresDialect{}
}

func (d *PostgresDialect) DriverName() string { return "postgres" }

func (d *PostgresDialect) DSN(config DialectConfig) string { return config.URL }

func (d *PostgresDialect) RewriteQuery(query string) string {
	return rewritePlaceholdersToNumbered(query)
}

// SupportsLastInsertId is false; ids come back through RETURNING
func (d *PostgresDialect) SupportsLastInsertId() bool { return false }

func (d *PostgresDialect) MigrationsSubdir() string { return "postgres" }

func (d *PostgresDialect) CreateMigrationsTableQuery() string {
	return migrationsTableDDL("BIGSERIAL PRIMARY KEY", "TEXT", "TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP")
}

func (d *PostgresDialect) UpsertStateQuery() string { return upsertStateOnConflict }
