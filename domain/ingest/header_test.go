package ingest

import (
	"testing"

	apperrors "fieldops/internal/errors"
)

// TestClean tests the header normalization transform
func TestClean(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Material \nPrice", "material_price"},
		{"material-price", "material_price"},
		{" MATERIAL_PRICE ", "material_price"},
		{"Store CCID", "store_ccid"},
		{"\uFEFFRegion", "region"},
		{"  __Total--Price__  ", "total_price"},
		{"", ""},
		{"---", ""},
		{"SQM (m2)", "sqm_m2"},
	}

	for _, tt := range tests {
		if got := Clean(tt.input); got != tt.expected {
			t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

var storeAnchor = AnchorRule{
	Mode:       AnchorKeyOrWideSupport,
	Key:        []string{"ccid"},
	Support:    []string{"brand"},
	WideRowMin: 5,
	Label:      "ccid/brand",
}

var priceAnchor = AnchorRule{
	Mode:    AnchorKeyAndSupport,
	Key:     []string{"code"},
	Support: []string{"description"},
	Label:   "code/description",
}

// TestLocateHeaderStoreRules tests the store anchor: CCID alone qualifies,
// brand only qualifies on rows wide enough to be real headers
func TestLocateHeaderStoreRules(t *testing.T) {
	tests := []struct {
		name     string
		grid     RawGrid
		expected int
		wantErr  bool
	}{
		{
			name: "ccid column alone qualifies",
			grid: RawGrid{
				{"Store Directory"},
				{"Store CCID", "Region", "Brand"},
				{"C1", "North", "Zara"},
			},
			expected: 1,
		},
		{
			name: "narrow brand label row is skipped",
			grid: RawGrid{
				{"Brand"},
				{"Oracle CCID", "Region"},
			},
			expected: 1,
		},
		{
			name: "wide brand row qualifies without ccid",
			grid: RawGrid{
				{"internal use only"},
				{"Region", "City", "Mall", "Division", "Brand", "Store Name"},
			},
			expected: 1,
		},
		{
			name: "no qualifying row",
			grid: RawGrid{
				{"just", "some", "data"},
				{"1", "2", "3"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := LocateHeader(tt.grid, storeAnchor)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got none")
				}
				if apperrors.GetCode(err) != apperrors.CodeHeaderNotFound {
					t.Errorf("Expected HEADER_NOT_FOUND code, got %s", apperrors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if idx != tt.expected {
				t.Errorf("Expected header at %d, got %d", tt.expected, idx)
			}
		})
	}
}

// TestLocateHeaderPriceListRules tests that the price list anchor needs
// both code and description in the same row
func TestLocateHeaderPriceListRules(t *testing.T) {
	grid := RawGrid{
		{"Price List 2026"},
		{"Code only row"},
		{"Code", "Description", "Unit", "Total Price"},
		{"P-001", "Paint wall", "m2", "12.50"},
	}

	idx, err := LocateHeader(grid, priceAnchor)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if idx != 2 {
		t.Errorf("Expected header at 2, got %d", idx)
	}

	_, err = LocateHeader(RawGrid{{"Code", "Unit"}, {"P-001", "m2"}}, priceAnchor)
	if err == nil {
		t.Error("Expected header-not-found when description column is absent")
	}
}

// TestLocateHeaderScanWindow tests the locator gives up after the window
func TestLocateHeaderScanWindow(t *testing.T) {
	grid := make(RawGrid, 40)
	for i := range grid {
		grid[i] = []string{"filler"}
	}
	grid[35] = []string{"Store CCID", "Brand"}

	if _, err := LocateHeader(grid, storeAnchor); err == nil {
		t.Error("Expected error for header beyond the scan window")
	}
}

// TestResolveHeaders tests alias resolution against a header row
func TestResolveHeaders(t *testing.T) {
	aliases := AliasTable{
		"oracle_ccid": {"oracle ccid", "ccid"},
		"brand":       {"brand"},
		"sqm":         {"sqm", "area"},
		"opening":     {"opening date"},
	}

	header := []string{"Brand", "STORE CCID", "Area (m2)", "notes"}
	resolved := ResolveHeaders(header, aliases)

	if idx, ok := resolved.Column("brand"); !ok || idx != 0 {
		t.Errorf("brand: expected column 0, got %d (ok=%v)", idx, ok)
	}
	// "store_ccid" contains "ccid" via the fuzzy fallback
	if idx, ok := resolved.Column("oracle_ccid"); !ok || idx != 1 {
		t.Errorf("oracle_ccid: expected column 1, got %d (ok=%v)", idx, ok)
	}
	// "area_m2" contains "area"
	if idx, ok := resolved.Column("sqm"); !ok || idx != 2 {
		t.Errorf("sqm: expected column 2, got %d (ok=%v)", idx, ok)
	}
	if _, ok := resolved.Column("opening"); ok {
		t.Error("opening: expected unresolved")
	}
}

// TestResolveHeadersExactBeatsFuzzy tests the exact pass runs across the
// whole alias list before any fuzzy attempt
func TestResolveHeadersExactBeatsFuzzy(t *testing.T) {
	aliases := AliasTable{
		"total_price": {"total price", "total"},
	}

	// Column 0 would fuzzy-match "total price"; column 1 matches "total"
	// exactly. Exact wins even though "total price" is the first alias.
	header := []string{"Total Price Notes", "Total"}
	resolved := ResolveHeaders(header, aliases)

	if idx, ok := resolved.Column("total_price"); !ok || idx != 1 {
		t.Errorf("Expected exact match on column 1, got %d (ok=%v)", idx, ok)
	}
}

// TestResolveHeadersShortAliasGuard tests 1-2 character aliases never match
// fuzzily
func TestResolveHeadersShortAliasGuard(t *testing.T) {
	aliases := AliasTable{
		"unit": {"no"},
	}

	resolved := ResolveHeaders([]string{"Notes", "Number"}, aliases)
	if _, ok := resolved.Column("unit"); ok {
		t.Error("Expected short alias to never match fuzzily")
	}

	// Exact short match still works
	resolved = ResolveHeaders([]string{"No"}, aliases)
	if idx, ok := resolved.Column("unit"); !ok || idx != 0 {
		t.Errorf("Expected exact short match on column 0, got %d (ok=%v)", idx, ok)
	}
}

// TestResolveHeadersFirstColumnWins tests ties resolve to the leftmost
// matching column
func TestResolveHeadersFirstColumnWins(t *testing.T) {
	aliases := AliasTable{
		"brand": {"brand"},
	}

	resolved := ResolveHeaders([]string{"Brand", "Brand"}, aliases)
	if idx, ok := resolved.Column("brand"); !ok || idx != 0 {
		t.Errorf("Expected leftmost column 0, got %d (ok=%v)", idx, ok)
	}
}
