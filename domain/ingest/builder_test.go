package ingest

import (
	"testing"
)

type record struct {
	key  string
	name string
}

func fromTestRow(r Row) record {
	return record{key: r.Text("key"), name: r.Text("name")}
}

// TestBuildRecordsFiltersMissingKeys tests that rows without a natural key
// are dropped silently while keyed rows each produce exactly one record
func TestBuildRecordsFiltersMissingKeys(t *testing.T) {
	grid := RawGrid{
		{"Title row"},
		{"Key", "Name"},
		{"K1", "First"},
		{"", "orphan without key"},
		{"#N/A", "placeholder key"},
		{"K2", "Second"},
		{"   ", ""},
	}
	columns := HeaderMap{"key": 0, "name": 1}

	records := BuildRecords(grid, 1, columns, "key", fromTestRow)

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].key != "K1" || records[1].key != "K2" {
		t.Errorf("Expected keys K1 and K2, got %q and %q", records[0].key, records[1].key)
	}
}

// TestBuildRecordsShortRows tests that rows narrower than the header read
// missing cells as empty instead of panicking
func TestBuildRecordsShortRows(t *testing.T) {
	grid := RawGrid{
		{"Key", "Name"},
		{"K1"},
	}
	columns := HeaderMap{"key": 0, "name": 1}

	records := BuildRecords(grid, 0, columns, "key", fromTestRow)

	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].name != "" {
		t.Errorf("Expected empty name for short row, got %q", records[0].name)
	}
}

// TestBuildRecordsHeaderIsLastRow tests a grid with no data rows
func TestBuildRecordsHeaderIsLastRow(t *testing.T) {
	grid := RawGrid{
		{"Key", "Name"},
	}
	columns := HeaderMap{"key": 0, "name": 1}

	records := BuildRecords(grid, 0, columns, "key", fromTestRow)
	if len(records) != 0 {
		t.Errorf("Expected no records, got %d", len(records))
	}
}

// TestRowAccessors tests the typed cell readers against unresolved fields
func TestRowAccessors(t *testing.T) {
	columns := HeaderMap{"price": 0, "when": 1}
	row := NewRow([]string{"$10.50", "01/31/2025"}, columns)

	if got := row.Number("price"); got != 10.50 {
		t.Errorf("Expected 10.50, got %v", got)
	}
	if got := row.Date("when"); got == nil {
		t.Error("Expected a parsed date, got nil")
	}
	if got := row.Number("missing"); got != 0 {
		t.Errorf("Expected 0 for unresolved field, got %v", got)
	}
	if got := row.Date("missing"); got != nil {
		t.Errorf("Expected nil date for unresolved field, got %v", got)
	}
	if got := row.Text("missing"); got != "" {
		t.Errorf("Expected empty text for unresolved field, got %q", got)
	}
}
