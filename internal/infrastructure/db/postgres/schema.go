package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate bootstraps the schema. Statements are idempotent so the service can
// run them unconditionally at startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            UUID PRIMARY KEY,
			name          TEXT NOT NULL,
			email         TEXT NOT NULL UNIQUE,
			phone         TEXT NOT NULL,
			national_id   TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			role          TEXT NOT NULL DEFAULT 'user',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS products (
			id          UUID PRIMARY KEY,
			name        TEXT NOT NULL,
			description TEXT NOT NULL,
			price       DOUBLE PRECISION NOT NULL,
			image       TEXT,
			owner       TEXT NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS shopping_lists (
			id         UUID PRIMARY KEY,
			name       TEXT NOT NULL,
			user_id    UUID NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS shopping_list_items (
			id         UUID PRIMARY KEY,
			list_id    UUID NOT NULL,
			product_id TEXT NOT NULL,
			name       TEXT NOT NULL,
			quantity   INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_shopping_lists_user ON shopping_lists (user_id);`,
		`CREATE INDEX IF NOT EXISTS idx_shopping_list_items_list ON shopping_list_items (list_id);`,
	}

	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
