package postgre

import (
	"context"
	"database/sql"
	"fmt"
)

const createTableQuery = `
	CREATE TABLE IF NOT EXISTS catalog_items (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		price        DOUBLE PRECISION NOT NULL,
		created_date TIMESTAMPTZ NOT NULL
	)`

// EnsureSchema creates the items table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createTableQuery); err != nil {
		return fmt.Errorf("item/repository/postgre: create table: %w", err)
	}
	return nil
}
