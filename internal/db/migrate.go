package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations are idempotent schema statements run in order on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS answers (
		question   TEXT PRIMARY KEY,
		value      TEXT,
		skipped    INTEGER NOT NULL DEFAULT 0,
		category   TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS category_usage (
		category            TEXT PRIMARY KEY,
		count               INTEGER NOT NULL DEFAULT 0,
		last_used_at_total  INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS category_priority (
		category TEXT PRIMARY KEY,
		priority REAL NOT NULL DEFAULT 1.0
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_answers_category ON answers(category)`,
	`CREATE INDEX IF NOT EXISTS idx_answers_skipped ON answers(skipped)`,
}

// Migrate runs all schema migrations.
func Migrate(conn *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := conn.Exec(stmt); err != nil {
			// Tolerate re-runs of ALTER TABLE statements added later.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
