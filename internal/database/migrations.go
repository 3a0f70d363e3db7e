package database

import (
	"database/sql"
	"fmt"
)

// schema is the canonical table layout. Staff are keyed by initials and
// purchases keep denormalized staff/item snapshots so history survives
// archiving and hard deletes. Item ids on purchases are nullable for the
// same reason.
const schema = `
CREATE TABLE IF NOT EXISTS staff (
    initials    TEXT PRIMARY KEY,
    surname     TEXT NOT NULL,
    forename    TEXT NOT NULL,
    archived_at TIMESTAMP
);

CREATE TABLE IF NOT EXISTS items (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL UNIQUE COLLATE NOCASE,
    price_pence INTEGER NOT NULL CHECK (price_pence >= 0),
    category    TEXT NOT NULL DEFAULT 'Food',
    archived_at TIMESTAMP
);

CREATE TABLE IF NOT EXISTS terms (
    term          TEXT NOT NULL,
    academic_year TEXT NOT NULL,
    created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (term, academic_year)
);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS purchases (
    id               TEXT PRIMARY KEY,
    staff_initials   TEXT NOT NULL,
    staff_forename   TEXT NOT NULL,
    staff_surname    TEXT NOT NULL,
    item_id          TEXT,
    item_name        TEXT NOT NULL,
    quantity         INTEGER NOT NULL CHECK (quantity > 0),
    unit_price_pence INTEGER NOT NULL CHECK (unit_price_pence >= 0),
    term             TEXT NOT NULL,
    academic_year    TEXT NOT NULL,
    created_at       TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_purchases_staff ON purchases (staff_initials);
CREATE INDEX IF NOT EXISTS idx_purchases_term ON purchases (term, academic_year);
`

const defaults = `
INSERT OR IGNORE INTO settings (key, value) VALUES ('current_term', 'Michaelmas');
INSERT OR IGNORE INTO settings (key, value) VALUES ('current_academic_year', '2024-25');
`

// Migrate applies the schema and seeds the default current-term settings.
// Statements are idempotent so this runs unconditionally at startup.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}

	if _, err := db.Exec(defaults); err != nil {
		return fmt.Errorf("seeding defaults: %w", err)
	}

	return nil
}
