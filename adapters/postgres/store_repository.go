package postgres

import (
	"context"
	"errors"
	"fmt"

	"fieldops/domain/store"
	"fieldops/ports"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// storeColumns is the persisted column order for bulk upserts
var storeColumns = []string{
	store.FieldOracleCCID, store.FieldRegion, store.FieldCity, store.FieldMall,
	store.FieldDivision, store.FieldBrand, store.FieldStoreName,
	store.FieldFMSupervisor, store.FieldFMManager, store.FieldSqm,
	store.FieldStoreStatus, store.FieldStoreType, store.FieldOpeningDate,
}

// storeRepository implements the StoreRepository interface
type storeRepository struct {
	db *sqlx.DB
}

// NewStoreRepository creates a new store repository
func NewStoreRepository(db *sqlx.DB) ports.StoreRepository {
	return &storeRepository{db: db}
}

// UpsertBatch writes the whole batch in one transaction, keyed by oracle_ccid
func (r *storeRepository) UpsertBatch(ctx context.Context, records []store.Store, updatableFields []string) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	written := 0
	for _, size := range chunkSize(len(records)) {
		chunk := records[written : written+size]
		query := buildUpsert("stores", store.FieldOracleCCID, storeColumns, updatableFields, len(chunk))

		args := make([]interface{}, 0, len(chunk)*len(storeColumns))
		for _, rec := range chunk {
			args = append(args,
				rec.OracleCCID, rec.Region, rec.City, rec.Mall, rec.Division,
				rec.Brand, rec.StoreName, rec.FMSupervisor, rec.FMManager,
				rec.Sqm, rec.StoreStatus, rec.StoreType, rec.OpeningDate,
			)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, describeUpsertError("stores", err)
		}
		written += size
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit store batch: %w", err)
	}
	return written, nil
}

// List retrieves canonical stores ordered by CCID
func (r *storeRepository) List(ctx context.Context, limit, offset int) ([]store.Store, error) {
	query := `SELECT
		oracle_ccid, region, city, mall, division, brand, store_name,
		fm_supervisor, fm_manager, sqm, store_status, store_type, opening_date
	FROM stores
	ORDER BY oracle_ccid
	LIMIT $1 OFFSET $2`

	var records []store.Store
	if err := r.db.SelectContext(ctx, &records, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	return records, nil
}

// Count returns the number of canonical store records
func (r *storeRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM stores"); err != nil {
		return 0, fmt.Errorf("failed to count stores: %w", err)
	}
	return count, nil
}

// describeUpsertError keeps the underlying driver error while naming the
// violated constraint for the operator when postgres reports one.
func describeUpsertError(table string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Constraint != "" {
		return fmt.Errorf("bulk upsert into %s violated constraint %s: %w", table, pqErr.Constraint, err)
	}
	return fmt.Errorf("bulk upsert into %s failed: %w", table, err)
}
