package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"items-service/internal/item/repository"
	"items-service/pkg/log"
	"items-service/pkg/sqldb"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS items (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_items_title ON items(title);
`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new SQLite-backed Repository for the item domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("item/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

// EnsureSchema creates the items table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("item/repository/sqlite: ensure schema: %w", err)
	}
	return nil
}

// q returns the request-scoped session when one is bound to ctx,
// falling back to the shared pool.
func (r *implRepository) q(ctx context.Context) sqldb.DBTX {
	return sqldb.Querier(ctx, r.db)
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/sqlite.%s", method)
}
