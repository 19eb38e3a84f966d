package postgres

import (
	"context"
	"fmt"

	"pharmapos/pkg/logger"
)

// schemaStatements creates the ledger store tables. Idempotent: every
// statement is IF NOT EXISTS, so the seed command can be re-run safely.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		username   TEXT PRIMARY KEY,
		password   TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS inventory (
		id             UUID PRIMARY KEY,
		name           TEXT NOT NULL,
		batch_no       TEXT NOT NULL DEFAULT '',
		expiry_date    DATE NOT NULL,
		quantity       BIGINT NOT NULL CHECK (quantity >= 0),
		sell_price     NUMERIC(12,2) NOT NULL DEFAULT 0,
		purchase_price NUMERIC(12,2) NOT NULL DEFAULT 0,
		created_at     TIMESTAMPTZ NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_inventory_expiry ON inventory (expiry_date)`,

	`CREATE TABLE IF NOT EXISTS sales (
		id            UUID PRIMARY KEY,
		date          DATE NOT NULL,
		medicine_name TEXT NOT NULL,
		quantity      BIGINT NOT NULL,
		unit_price    NUMERIC(12,2) NOT NULL,
		line_total    NUMERIC(14,2) NOT NULL,
		buyer_name    TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_date ON sales (date DESC, created_at DESC)`,

	`CREATE TABLE IF NOT EXISTS purchases (
		id                  UUID PRIMARY KEY,
		date                DATE NOT NULL,
		medicine_name       TEXT NOT NULL,
		batch_no            TEXT NOT NULL DEFAULT '',
		expiry_date         DATE NOT NULL,
		quantity            BIGINT NOT NULL,
		unit_purchase_price NUMERIC(12,2) NOT NULL,
		supplier            TEXT NOT NULL DEFAULT '',
		created_at          TIMESTAMPTZ NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS sys_sequences (
		sequence_type TEXT NOT NULL,
		year          INT NOT NULL,
		current_val   BIGINT NOT NULL,
		PRIMARY KEY (sequence_type, year)
	)`,
}

// Default operator credentials mirror the system this replaces. Plaintext
// storage is a documented, carried-forward limitation.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// Migrate creates the schema and seeds the default operator account.
func Migrate(ctx context.Context, pool *Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	_, err := pool.Exec(ctx, `
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		ON CONFLICT (username) DO NOTHING
	`, defaultAdminUsername, defaultAdminPassword)
	if err != nil {
		return fmt.Errorf("seed default operator: %w", err)
	}

	logger.Info(ctx, "schema migrated", "tables", []string{"users", "inventory", "sales", "purchases", "sys_sequences"})
	return nil
}
