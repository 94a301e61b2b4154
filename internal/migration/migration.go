package migration

import (
	"context"

	"fieldops/internal/errors"

	"github.com/jmoiron/sqlx"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createStoresTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create stores table")
	}

	if err := r.createPriceListItemsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create price_list_items table")
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}

	return nil
}

func (r *MigrationRunner) createStoresTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS stores (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			oracle_ccid VARCHAR(100) UNIQUE NOT NULL,
			region TEXT NOT NULL DEFAULT '',
			city TEXT NOT NULL DEFAULT '',
			mall TEXT NOT NULL DEFAULT '',
			division TEXT NOT NULL DEFAULT '',
			brand TEXT NOT NULL DEFAULT '',
			store_name TEXT NOT NULL DEFAULT '',
			fm_supervisor TEXT NOT NULL DEFAULT '',
			fm_manager TEXT NOT NULL DEFAULT '',
			sqm DECIMAL(12,2) NOT NULL DEFAULT 0,
			store_status VARCHAR(50) NOT NULL DEFAULT 'ACTIVE',
			store_type TEXT NOT NULL DEFAULT '',
			opening_date DATE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createPriceListItemsTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS price_list_items (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			code VARCHAR(100) UNIQUE NOT NULL,
			type TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			unit VARCHAR(50) NOT NULL DEFAULT '',
			material_price DECIMAL(12,2) NOT NULL DEFAULT 0,
			labor_price DECIMAL(12,2) NOT NULL DEFAULT 0,
			total_price DECIMAL(12,2) NOT NULL DEFAULT 0,
			remarks TEXT NOT NULL DEFAULT '',
			comments TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)
	`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_stores_brand ON stores(brand)",
		"CREATE INDEX IF NOT EXISTS idx_stores_region ON stores(region)",
		"CREATE INDEX IF NOT EXISTS idx_stores_status ON stores(store_status)",
		"CREATE INDEX IF NOT EXISTS idx_price_list_items_type ON price_list_items(type)",
	}

	for _, stmt := range indexes {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
