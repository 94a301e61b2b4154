package pricelist

import (
	"fieldops/domain/ingest"
)

// Canonical field names for the price list import target. These double as
// the database column names.
const (
	FieldCode          = "code"
	FieldType          = "type"
	FieldDescription   = "description"
	FieldUnit          = "unit"
	FieldMaterialPrice = "material_price"
	FieldLaborPrice    = "labor_price"
	FieldTotalPrice    = "total_price"
	FieldRemarks       = "remarks"
	FieldComments      = "comments"
)

// Item is the canonical record for one price list line, upserted against
// its item code.
type Item struct {
	Code          string  `db:"code" json:"code"`
	Type          string  `db:"type" json:"type"`
	Description   string  `db:"description" json:"description"`
	Unit          string  `db:"unit" json:"unit"`
	MaterialPrice float64 `db:"material_price" json:"material_price"`
	LaborPrice    float64 `db:"labor_price" json:"labor_price"`
	TotalPrice    float64 `db:"total_price" json:"total_price"`
	Remarks       string  `db:"remarks" json:"remarks"`
	Comments      string  `db:"comments" json:"comments"`
}

// Aliases lists the accepted raw header spellings per canonical field,
// in match-priority order.
var Aliases = ingest.AliasTable{
	FieldCode:          {"code", "item code", "price code"},
	FieldType:          {"type", "category"},
	FieldDescription:   {"description", "item description", "works description"},
	FieldUnit:          {"unit", "uom", "unit of measure"},
	FieldMaterialPrice: {"material price", "material", "material cost", "supply price"},
	FieldLaborPrice:    {"labor price", "labour price", "labor", "installation price"},
	FieldTotalPrice:    {"total price", "total", "unit price"},
	FieldRemarks:       {"remarks", "remark"},
	FieldComments:      {"comments", "comment", "notes"},
}

// Anchor requires both the code column and the description column in the
// same row before it is trusted as the header.
var Anchor = ingest.AnchorRule{
	Mode:    ingest.AnchorKeyAndSupport,
	Key:     Aliases[FieldCode],
	Support: Aliases[FieldDescription],
	Label:   "code/description",
}

// UpdatableFields are overwritten when an upload hits an existing code.
// The natural key itself is never updated.
var UpdatableFields = []string{
	FieldType, FieldDescription, FieldUnit, FieldMaterialPrice,
	FieldLaborPrice, FieldTotalPrice, FieldRemarks, FieldComments,
}

// FromRow builds a canonical price list item from one mapped data row.
// When no explicit total column resolved, or it parsed to zero, the total
// defaults to material + labor.
func FromRow(r ingest.Row) Item {
	item := Item{
		Code:          r.Text(FieldCode),
		Type:          r.Text(FieldType),
		Description:   r.Text(FieldDescription),
		Unit:          r.Text(FieldUnit),
		MaterialPrice: r.Number(FieldMaterialPrice),
		LaborPrice:    r.Number(FieldLaborPrice),
		TotalPrice:    r.Number(FieldTotalPrice),
		Remarks:       r.Text(FieldRemarks),
		Comments:      r.Text(FieldComments),
	}
	if item.TotalPrice == 0 {
		item.TotalPrice = item.MaterialPrice + item.LaborPrice
	}
	return item
}
