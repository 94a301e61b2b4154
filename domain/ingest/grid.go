package ingest

import (
	"strings"
)

// RawGrid is the undifferentiated cell matrix produced from one upload.
// Position is original column order; nothing is assumed to be a header yet.
type RawGrid [][]string

// Rows returns the number of rows in the grid
func (g RawGrid) Rows() int {
	return len(g)
}

// IsEmpty reports whether the grid holds no rows at all
func (g RawGrid) IsEmpty() bool {
	return len(g) == 0
}

// Decode turns a raw uploaded byte buffer into a grid of string cells.
// The buffer is treated as UTF-8 text with an optional leading BOM. The
// field delimiter is detected from the first line only: comma wins over
// semicolon, semicolon over tab, and comma is the fallback. Documents with
// commas inside quoted fields on the first line can mis-detect; accepted
// limitation of the heuristic.
func Decode(data []byte) RawGrid {
	text := strings.TrimPrefix(string(data), "\uFEFF")
	if text == "" {
		return RawGrid{}
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	delimiter := detectDelimiter(lines[0])

	grid := make(RawGrid, 0, len(lines))
	for _, line := range lines {
		grid = append(grid, strings.Split(line, delimiter))
	}
	return grid
}

// detectDelimiter inspects the first line of the document. Best-effort
// heuristic, not a full sniffer.
func detectDelimiter(firstLine string) string {
	switch {
	case strings.Contains(firstLine, ","):
		return ","
	case strings.Contains(firstLine, ";"):
		return ";"
	case strings.Contains(firstLine, "\t"):
		return "\t"
	default:
		return ","
	}
}
