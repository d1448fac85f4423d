package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the line store schema. Every statement is idempotent and
// runs on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// A line store is a named, ordered sequence of text lines: the SQLite
// counterpart of one plain-text file.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS line_stores (
		name       TEXT PRIMARY KEY,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS store_lines (
		store TEXT NOT NULL REFERENCES line_stores(name) ON DELETE CASCADE,
		seq   INTEGER NOT NULL,
		text  TEXT NOT NULL,
		PRIMARY KEY (store, seq)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_store_lines_store ON store_lines(store)`,
}
