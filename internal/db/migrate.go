package db

import (
	"database/sql"
	"fmt"
)

// migrations holds the Timetagger user-store table layout: records carry
// their payload as a JSON blob in _ob with the start/end epochs duplicated
// into t1/t2 for range queries; userinfo and settings are key/value stores.
// Every statement is idempotent so the set can be re-run on open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS records (
		key TEXT PRIMARY KEY,
		st  REAL NOT NULL DEFAULT 0,
		t1  INTEGER NOT NULL,
		t2  INTEGER NOT NULL,
		_ob TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_records_t1 ON records(t1)`,
	`CREATE INDEX IF NOT EXISTS idx_records_t2 ON records(t2)`,
	`CREATE TABLE IF NOT EXISTS userinfo (
		key TEXT PRIMARY KEY,
		st  REAL NOT NULL DEFAULT 0,
		_ob TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		st  REAL NOT NULL DEFAULT 0,
		_ob TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
