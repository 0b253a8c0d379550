package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// Execer is the part of *sql.DB that Migrate needs.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const schema = `
CREATE TABLE IF NOT EXISTS returns (
    id          UUID PRIMARY KEY,
    folio       TEXT NOT NULL UNIQUE,
    customer    TEXT NOT NULL DEFAULT '',
    address     TEXT NOT NULL DEFAULT '',
    reason      TEXT NOT NULL DEFAULT '',
    zone        TEXT NOT NULL,
    seller_id   TEXT,
    status      TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected')),
    total       NUMERIC(14, 2) NOT NULL CHECK (total > 0),
    returned_at DATE NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS return_items (
    return_id  UUID NOT NULL REFERENCES returns(id) ON DELETE CASCADE,
    position   INTEGER NOT NULL,
    name       TEXT NOT NULL DEFAULT '',
    code       TEXT NOT NULL DEFAULT '',
    aisle      TEXT NOT NULL DEFAULT '',
    quantity   INTEGER NOT NULL CHECK (quantity > 0),
    unit_price NUMERIC(14, 4) NOT NULL CHECK (unit_price >= 0),
    PRIMARY KEY (return_id, position)
);

CREATE TABLE IF NOT EXISTS people (
    id         UUID PRIMARY KEY,
    name       TEXT NOT NULL UNIQUE,
    active     BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS aisle_assignments (
    id          UUID PRIMARY KEY,
    aisle       TEXT NOT NULL,
    person_id   UUID NOT NULL REFERENCES people(id),
    active_from DATE NOT NULL,
    active_to   DATE,
    UNIQUE (aisle, active_from),
    CHECK (active_to IS NULL OR active_to >= active_from)
);
`

// migrations run after schema in order. Each one must be idempotent.
var migrations = []string{
	`CREATE INDEX IF NOT EXISTS idx_returns_returned_at ON returns(returned_at)`,
	`CREATE INDEX IF NOT EXISTS idx_returns_zone ON returns(zone)`,
	`CREATE INDEX IF NOT EXISTS idx_return_items_aisle ON return_items(aisle)`,
	`CREATE INDEX IF NOT EXISTS idx_aisle_assignments_person ON aisle_assignments(person_id)`,
}

// Migrate creates the returns schema and applies pending migrations.
func Migrate(ctx context.Context, db Execer) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
