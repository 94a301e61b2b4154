package postgres

import (
	"context"
	"fmt"

	"fieldops/domain/pricelist"
	"fieldops/ports"

	"github.com/jmoiron/sqlx"
)

// priceListColumns is the persisted column order for bulk upserts
var priceListColumns = []string{
	pricelist.FieldCode, pricelist.FieldType, pricelist.FieldDescription,
	pricelist.FieldUnit, pricelist.FieldMaterialPrice, pricelist.FieldLaborPrice,
	pricelist.FieldTotalPrice, pricelist.FieldRemarks, pricelist.FieldComments,
}

// priceListRepository implements the PriceListRepository interface
type priceListRepository struct {
	db *sqlx.DB
}

// NewPriceListRepository creates a new price list repository
func NewPriceListRepository(db *sqlx.DB) ports.PriceListRepository {
	return &priceListRepository{db: db}
}

// UpsertBatch writes the whole batch in one transaction, keyed by code
func (r *priceListRepository) UpsertBatch(ctx context.Context, items []pricelist.Item, updatableFields []string) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	written := 0
	for _, size := range chunkSize(len(items)) {
		chunk := items[written : written+size]
		query := buildUpsert("price_list_items", pricelist.FieldCode, priceListColumns, updatableFields, len(chunk))

		args := make([]interface{}, 0, len(chunk)*len(priceListColumns))
		for _, item := range chunk {
			args = append(args,
				item.Code, item.Type, item.Description, item.Unit,
				item.MaterialPrice, item.LaborPrice, item.TotalPrice,
				item.Remarks, item.Comments,
			)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, describeUpsertError("price_list_items", err)
		}
		written += size
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit price list batch: %w", err)
	}
	return written, nil
}

// List retrieves price list items ordered by code
func (r *priceListRepository) List(ctx context.Context, limit, offset int) ([]pricelist.Item, error) {
	query := `SELECT
		code, type, description, unit, material_price, labor_price,
		total_price, remarks, comments
	FROM price_list_items
	ORDER BY code
	LIMIT $1 OFFSET $2`

	var items []pricelist.Item
	if err := r.db.SelectContext(ctx, &items, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list price list items: %w", err)
	}
	return items, nil
}

// Count returns the number of price list items
func (r *priceListRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM price_list_items"); err != nil {
		return 0, fmt.Errorf("failed to count price list items: %w", err)
	}
	return count, nil
}

// TotalPrices returns every item's total price for dashboard summaries
func (r *priceListRepository) TotalPrices(ctx context.Context) ([]float64, error) {
	var prices []float64
	if err := r.db.SelectContext(ctx, &prices, "SELECT total_price FROM price_list_items ORDER BY code"); err != nil {
		return nil, fmt.Errorf("failed to load total prices: %w", err)
	}
	return prices, nil
}
