package ports

import (
	"context"

	"fieldops/domain/pricelist"
)

// PriceListRepository defines the storage operations for price list items
type PriceListRepository interface {
	// UpsertBatch writes one reconciled batch inside a single transaction.
	// Rows with an existing code have only updatableFields overwritten; new
	// codes are inserted in full. On any persistence error the whole batch
	// is rolled back and the underlying error returned.
	UpsertBatch(ctx context.Context, items []pricelist.Item, updatableFields []string) (int, error)

	// List returns price list items ordered by code with pagination
	List(ctx context.Context, limit, offset int) ([]pricelist.Item, error)

	// Count returns the number of price list items
	Count(ctx context.Context) (int, error)

	// TotalPrices returns every item's total price, for dashboard summaries
	TotalPrices(ctx context.Context) ([]float64, error)
}
