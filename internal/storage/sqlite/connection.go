package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// AUTOINCREMENT keeps ids from being reused after a delete.
const schema = `
CREATE TABLE IF NOT EXISTS projects (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    client_name TEXT NOT NULL,
    project_no  TEXT NOT NULL,
    media       TEXT NOT NULL,
    status      TEXT NOT NULL DEFAULT 'In Progress',
    created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// NewConnection opens a SQLite database at path (":memory:" for a throwaway
// one). The pool is capped at one connection: SQLite allows a single writer
// and every new in-memory connection would otherwise see an empty database.
func NewConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// Migrate creates the projects table if it does not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate projects: %w", err)
	}
	return nil
}
