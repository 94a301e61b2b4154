package ingest

import (
	"strconv"
	"strings"
	"time"
)

// dateFormats are the known spreadsheet date spellings, tried in order.
var dateFormats = []string{
	"01/02/2006",  // MM/DD/YYYY
	"1/2/2006",    // M/D/YYYY
	"02-Jan-2006", // DD-MMM-YYYY
	"2006-01-02",  // YYYY-MM-DD
}

// IsNullToken reports whether a raw cell carries no value: empty after
// trimming or the spreadsheet placeholder #N/A.
func IsNullToken(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed == "" || strings.EqualFold(trimmed, "#N/A")
}

// ParsePrice coerces a raw cell into a decimal amount. Null tokens become
// zero; currency symbols and thousands separators are stripped before
// parsing. A cell that still fails to parse degrades to zero so one bad
// price never aborts a multi-thousand-row batch.
func ParsePrice(raw string) float64 {
	if IsNullToken(raw) {
		return 0
	}

	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return value
}

// ParseDate coerces a raw cell into a date, trying each known format in
// order. Null tokens and malformed dates degrade to nil ("unknown"), never
// an error.
func ParseDate(raw string) *time.Time {
	if IsNullToken(raw) {
		return nil
	}

	trimmed := strings.TrimSpace(raw)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return &t
		}
	}
	return nil
}

// TrimOrNull trims a raw cell and maps empty results to nil so downstream
// "value or default" fallbacks work uniformly.
func TrimOrNull(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// TrimOrDefault trims a raw cell, substituting fallback when nothing is left
func TrimOrDefault(raw, fallback string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
