package ingest

import (
	"testing"
	"time"
)

// TestParsePrice tests currency/number cleanup and safe defaults
func TestParsePrice(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"$1,200.50", 1200.50},
		{"1200.50", 1200.50},
		{"AED 3,500", 3500},
		{"-15.25", -15.25},
		{"#N/A", 0},
		{"#n/a", 0},
		{"", 0},
		{"   ", 0},
		{"not a number", 0},
		{"1.2.3", 0},
		{"0", 0},
	}

	for _, tt := range tests {
		if got := ParsePrice(tt.input); got != tt.expected {
			t.Errorf("ParsePrice(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

// TestParseDate tests the ordered known formats and null degradation
func TestParseDate(t *testing.T) {
	want := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		input    string
		expected *time.Time
	}{
		{"01/31/2025", &want},
		{"1/31/2025", &want},
		{"31-Jan-2025", &want},
		{"2025-01-31", &want},
		{"not a date", nil},
		{"#N/A", nil},
		{"", nil},
		{"31/01/2025", nil}, // no DD/MM format in the known list
	}

	for _, tt := range tests {
		got := ParseDate(tt.input)
		if tt.expected == nil {
			if got != nil {
				t.Errorf("ParseDate(%q) = %v, want nil", tt.input, got)
			}
			continue
		}
		if got == nil {
			t.Errorf("ParseDate(%q) = nil, want %v", tt.input, *tt.expected)
			continue
		}
		if !got.Equal(*tt.expected) {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.input, *got, *tt.expected)
		}
	}
}

// TestParseDateFormatsAgree tests that both US and ISO spellings of the same
// day yield the same canonical date
func TestParseDateFormatsAgree(t *testing.T) {
	us := ParseDate("01/31/2025")
	iso := ParseDate("2025-01-31")
	if us == nil || iso == nil {
		t.Fatal("Expected both formats to parse")
	}
	if !us.Equal(*iso) {
		t.Errorf("Expected equal dates, got %v and %v", *us, *iso)
	}
}

// TestTrimOrNull tests empty-after-trim becomes nil
func TestTrimOrNull(t *testing.T) {
	if got := TrimOrNull("  hello  "); got == nil || *got != "hello" {
		t.Errorf("TrimOrNull on text failed: %v", got)
	}
	if got := TrimOrNull("   "); got != nil {
		t.Errorf("Expected nil for whitespace, got %q", *got)
	}
	if got := TrimOrNull(""); got != nil {
		t.Errorf("Expected nil for empty, got %q", *got)
	}
}

// TestTrimOrDefault tests fallback substitution
func TestTrimOrDefault(t *testing.T) {
	if got := TrimOrDefault("", "ACTIVE"); got != "ACTIVE" {
		t.Errorf("Expected ACTIVE, got %q", got)
	}
	if got := TrimOrDefault(" CLOSED ", "ACTIVE"); got != "CLOSED" {
		t.Errorf("Expected CLOSED, got %q", got)
	}
}

// TestIsNullToken tests the null vocabulary
func TestIsNullToken(t *testing.T) {
	for _, s := range []string{"", "  ", "#N/A", "#n/a", " #N/A "} {
		if !IsNullToken(s) {
			t.Errorf("Expected %q to be a null token", s)
		}
	}
	for _, s := range []string{"0", "N/A?", "value"} {
		if IsNullToken(s) {
			t.Errorf("Expected %q to not be a null token", s)
		}
	}
}
