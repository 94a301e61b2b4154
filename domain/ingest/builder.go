package ingest

import (
	"strings"
	"time"
)

// Row is one data row below the header, read through the resolved column
// mapping. Unresolved fields read as empty, which the normalizers map to
// their safe defaults.
type Row struct {
	cells   []string
	columns HeaderMap
}

// NewRow binds raw cells to a header map
func NewRow(cells []string, columns HeaderMap) Row {
	return Row{cells: cells, columns: columns}
}

// Raw returns the unprocessed cell for a canonical field, or "" when the
// field is unresolved or the row is short.
func (r Row) Raw(field string) string {
	idx, ok := r.columns[field]
	if !ok || idx < 0 || idx >= len(r.cells) {
		return ""
	}
	return r.cells[idx]
}

// Text returns the trimmed cell value, "" when null
func (r Row) Text(field string) string {
	raw := r.Raw(field)
	if IsNullToken(raw) {
		return ""
	}
	return strings.TrimSpace(raw)
}

// Number returns the cell parsed as a decimal amount
func (r Row) Number(field string) float64 {
	return ParsePrice(r.Raw(field))
}

// Date returns the cell parsed as a date, nil when unknown
func (r Row) Date(field string) *time.Time {
	return ParseDate(r.Raw(field))
}

// BuildRecords walks every row strictly after headerIdx, drops rows whose
// natural key cell is missing or a placeholder (blank trailing rows and
// footers, not an error condition), and maps the rest through fromRow.
func BuildRecords[T any](grid RawGrid, headerIdx int, columns HeaderMap, keyField string, fromRow func(Row) T) []T {
	records := make([]T, 0, len(grid))
	for i := headerIdx + 1; i < len(grid); i++ {
		row := NewRow(grid[i], columns)
		if IsNullToken(row.Raw(keyField)) {
			continue
		}
		records = append(records, fromRow(row))
	}
	return records
}
