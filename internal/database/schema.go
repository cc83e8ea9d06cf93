package database

import (
	"context"
	"fmt"
)

// Schema holds the commission baseline tables. Names are matched
// case-insensitively by the queries, so no unique index is put on them.
const Schema = `
CREATE TABLE IF NOT EXISTS companies (
	id               TEXT PRIMARY KEY,
	name             TEXT NOT NULL,
	commission_model TEXT NOT NULL DEFAULT 'table' CHECK (commission_model IN ('table', 'formula')),
	gnew_margin_pct  DOUBLE PRECISION NOT NULL DEFAULT 0,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS products (
	id         TEXT PRIMARY KEY,
	company_id TEXT NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
	name       TEXT NOT NULL,
	fee_value  DOUBLE PRECISION,
	fee_label  TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_products_company ON products(company_id);

CREATE TABLE IF NOT EXISTS rates (
	id              TEXT PRIMARY KEY,
	product_id      TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
	tariff          TEXT NOT NULL,
	consumption_min DOUBLE PRECISION NOT NULL,
	consumption_max DOUBLE PRECISION NOT NULL,
	gross_amount    DOUBLE PRECISION NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_rates_product ON rates(product_id);
`

// Migrate creates the baseline tables when missing
func Migrate(ctx context.Context, db DBTX) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("error applying schema: %w", err)
	}
	return nil
}
