package ingest

import (
	"reflect"
	"testing"
)

// TestDecodeDelimiterDetection tests that the decoder picks the delimiter
// from the first line and produces the same logical grid either way
func TestDecodeDelimiterDetection(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected RawGrid
	}{
		{
			name:     "comma delimited",
			input:    "a,b,c\n1,2,3",
			expected: RawGrid{{"a", "b", "c"}, {"1", "2", "3"}},
		},
		{
			name:     "semicolon delimited",
			input:    "a;b;c\n1;2;3",
			expected: RawGrid{{"a", "b", "c"}, {"1", "2", "3"}},
		},
		{
			name:     "tab delimited",
			input:    "a\tb\tc\n1\t2\t3",
			expected: RawGrid{{"a", "b", "c"}, {"1", "2", "3"}},
		},
		{
			name:     "comma wins over semicolon",
			input:    "a,b;c\n1,2;3",
			expected: RawGrid{{"a", "b;c"}, {"1", "2;3"}},
		},
		{
			name:     "no delimiter on first line defaults to comma",
			input:    "title\n1,2",
			expected: RawGrid{{"title"}, {"1", "2"}},
		},
		{
			name:     "blank cells stay empty strings",
			input:    "a,,c\n,,",
			expected: RawGrid{{"a", "", "c"}, {"", "", ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decode([]byte(tt.input))
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Decode(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

// TestDecodeEmptyBuffer tests that an empty upload yields an empty grid,
// not an error or a panic
func TestDecodeEmptyBuffer(t *testing.T) {
	got := Decode(nil)
	if !got.IsEmpty() {
		t.Errorf("Expected empty grid for nil buffer, got %d rows", got.Rows())
	}

	got = Decode([]byte(""))
	if !got.IsEmpty() {
		t.Errorf("Expected empty grid for empty buffer, got %d rows", got.Rows())
	}
}

// TestDecodeStripsBOM tests the leading byte-order-mark is removed before
// the first cell is read
func TestDecodeStripsBOM(t *testing.T) {
	got := Decode([]byte("\uFEFFccid,brand\nC1,Zara"))
	if got.Rows() != 2 {
		t.Fatalf("Expected 2 rows, got %d", got.Rows())
	}
	if got[0][0] != "ccid" {
		t.Errorf("Expected BOM stripped from first cell, got %q", got[0][0])
	}
}

// TestDecodeWindowsLineEndings tests CRLF documents decode cleanly
func TestDecodeWindowsLineEndings(t *testing.T) {
	got := Decode([]byte("a,b\r\n1,2\r\n"))
	if got.Rows() != 3 {
		t.Fatalf("Expected 3 rows (incl. trailing blank), got %d", got.Rows())
	}
	if !reflect.DeepEqual(got[1], []string{"1", "2"}) {
		t.Errorf("Expected [1 2], got %v", got[1])
	}
}
