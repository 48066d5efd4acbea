package database

import (
	_ "github.com/go-sql-driver/mysql"
)

// MySQLDialect keeps client state on a shared MySQL server
type MySQLDialect struct {
	sharedPool
}

func NewMySQLDialect() *MySQLDialect {
	return &MySQLDialect{}
}

func (d *MySQLDialect) DriverName() string { return "mysql" }

func (d *MySQLDialect) DSN(config DialectConfig) string { return config.URL }

func (d *MySQLDialect) RewriteQuery(query string) string { return query }

func (d *MySQLDialect) SupportsLastInsertId() bool { return true }

func (d *MySQLDialect) MigrationsSubdir() string { return "mysql" }

func (d *MySQLDialect) CreateMigrationsTableQuery() string {
	return migrationsTableDDL("BIGINT AUTO_INCREMENT PRIMARY KEY", "VARCHAR(255)", "DATETIME(6) DEFAULT CURRENT_TIMESTAMP(6)")
}

func (d *MySQLDialect) UpsertStateQuery() string {
	return `
	INSERT INTO client_state (state_key, state_value, updated_at)
	VALUES (?, ?, CURRENT_TIMESTAMP(6))
	ON DUPLICATE KEY UPDATE
	state_value = VALUES(state_value), updated_at = CURRENT_TIMESTAMP(6)
`
}
