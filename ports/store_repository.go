package ports

import (
	"context"

	"fieldops/domain/store"
)

// StoreRepository defines the storage operations for canonical store records
type StoreRepository interface {
	// UpsertBatch writes one reconciled batch inside a single transaction.
	// Rows with an existing oracle_ccid have only updatableFields
	// overwritten; new CCIDs are inserted in full. On any persistence error
	// the whole batch is rolled back and the underlying error returned.
	UpsertBatch(ctx context.Context, records []store.Store, updatableFields []string) (int, error)

	// List returns canonical stores ordered by CCID with pagination
	List(ctx context.Context, limit, offset int) ([]store.Store, error)

	// Count returns the number of canonical store records
	Count(ctx context.Context) (int, error)
}
