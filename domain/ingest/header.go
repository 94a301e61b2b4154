package ingest

import (
	"strings"

	"fieldops/internal/errors"
)

// headerScanWindow is how many leading rows the locator inspects before
// giving up. Source spreadsheets carry at most a handful of title and blank
// rows above the real header.
const headerScanWindow = 30

// fuzzyMinAliasLen guards the substring fallback: aliases of one or two
// characters would match almost any header.
const fuzzyMinAliasLen = 3

// AliasTable maps a canonical field name to the ordered list of raw header
// spellings accepted for it. Declared once per import target.
type AliasTable map[string][]string

// HeaderMap maps a canonical field name to a zero-based column index within
// the grid. A field absent from the map is unresolved.
type HeaderMap map[string]int

// Column returns the resolved column index for a field
func (m HeaderMap) Column(field string) (int, bool) {
	idx, ok := m[field]
	return idx, ok
}

// AnchorMode selects how an anchor rule combines its two alias groups.
type AnchorMode int

const (
	// AnchorKeyOrWideSupport qualifies a row when a key alias is present, or
	// when a support alias is present and the row is wider than WideRowMin
	// cells. The width check keeps a narrow label row from passing as headers.
	AnchorKeyOrWideSupport AnchorMode = iota
	// AnchorKeyAndSupport requires one key alias and one support alias in the
	// same row.
	AnchorKeyAndSupport
)

// AnchorRule describes the strong header-row signals for one import target.
type AnchorRule struct {
	Mode       AnchorMode
	Key        []string
	Support    []string
	WideRowMin int
	// Label names the anchors in operator-facing error messages,
	// e.g. "code/description".
	Label string
}

// matches reports whether a row of cleaned cells qualifies as a header row
func (r AnchorRule) matches(cleaned []string) bool {
	switch r.Mode {
	case AnchorKeyAndSupport:
		return rowHasAlias(cleaned, r.Key) && rowHasAlias(cleaned, r.Support)
	default:
		if rowHasAlias(cleaned, r.Key) {
			return true
		}
		return len(cleaned) > r.WideRowMin && rowHasAlias(cleaned, r.Support)
	}
}

// Clean normalizes a raw header or alias for comparison: BOM stripped,
// lowercased, any run of non-alphanumeric characters collapsed to a single
// underscore, leading/trailing underscores trimmed. "Material \nPrice",
// "material-price" and " MATERIAL_PRICE " all compare equal.
func Clean(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "\uFEFF"))

	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range s {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		} else {
			pendingSep = true
		}
	}
	return b.String()
}

// LocateHeader scans the first rows of the grid for the one that most
// plausibly contains column headers. Returns the first qualifying row index.
// When no row in the window qualifies the import must fail rather than
// guess: a wrong header silently corrupts every downstream record.
func LocateHeader(grid RawGrid, rule AnchorRule) (int, error) {
	window := headerScanWindow
	if len(grid) < window {
		window = len(grid)
	}

	for i := 0; i < window; i++ {
		cleaned := cleanRow(grid[i])
		if rule.matches(cleaned) {
			return i, nil
		}
	}
	return 0, errors.HeaderNotFound(rule.Label)
}

// ResolveHeaders maps each canonical field to a column index using the alias
// table. Matching is two-pass per field: an exact pass over the whole alias
// list first, then a substring fallback (either direction) for aliases of
// length three or more. The first matching column scanning left to right
// wins. Fields with no match are left out of the map.
func ResolveHeaders(headerRow []string, aliases AliasTable) HeaderMap {
	cleaned := cleanRow(headerRow)

	resolved := make(HeaderMap, len(aliases))
	for field, list := range aliases {
		if idx, ok := matchColumn(cleaned, list); ok {
			resolved[field] = idx
		}
	}
	return resolved
}

func cleanRow(row []string) []string {
	cleaned := make([]string, len(row))
	for i, cell := range row {
		cleaned[i] = Clean(cell)
	}
	return cleaned
}

// matchColumn runs the exact pass across the whole alias list before any
// fuzzy attempt. Collapsing the two passes into one would change which
// column wins when several columns fuzzily match the same alias.
func matchColumn(cleaned []string, aliases []string) (int, bool) {
	for _, alias := range aliases {
		ca := Clean(alias)
		for i, header := range cleaned {
			if header == ca {
				return i, true
			}
		}
	}
	for _, alias := range aliases {
		ca := Clean(alias)
		if len(ca) < fuzzyMinAliasLen {
			continue
		}
		for i, header := range cleaned {
			if fuzzyMatch(header, ca) {
				return i, true
			}
		}
	}
	return 0, false
}

func fuzzyMatch(header, alias string) bool {
	if header == "" {
		return false
	}
	return strings.Contains(header, alias) || strings.Contains(alias, header)
}

// rowHasAlias reports whether any cleaned cell matches any of the aliases,
// exactly or fuzzily. Used for anchor detection only.
func rowHasAlias(cleaned []string, aliases []string) bool {
	for _, alias := range aliases {
		ca := Clean(alias)
		for _, header := range cleaned {
			if header == ca {
				return true
			}
			if len(ca) >= fuzzyMinAliasLen && fuzzyMatch(header, ca) {
				return true
			}
		}
	}
	return false
}
