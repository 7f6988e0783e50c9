package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is the DDL for the postgres backend. seq preserves catalog
// insertion order, which listing relies on.
const schema = `
CREATE TABLE IF NOT EXISTS products (
	seq         BIGSERIAL,
	id          VARCHAR(64) PRIMARY KEY,
	name        TEXT NOT NULL,
	category    TEXT NOT NULL,
	brand       TEXT NOT NULL,
	price       INTEGER NOT NULL CHECK (price >= 0),
	image       TEXT NOT NULL DEFAULT '',
	description TEXT,
	specs       JSONB,
	socket      TEXT,
	wattage     INTEGER,
	in_stock    BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE INDEX IF NOT EXISTS idx_products_category ON products (category);

CREATE TABLE IF NOT EXISTS builds (
	id          VARCHAR(64) PRIMARY KEY,
	name        TEXT NOT NULL,
	components  JSONB NOT NULL DEFAULT '{}'::jsonb,
	total_price INTEGER NOT NULL DEFAULT 0,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// EnsureSchema creates the products and builds tables if they do not
// exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}
