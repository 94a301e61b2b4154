package postgres

import (
	"fmt"
	"strings"
)

// maxRowsPerStatement keeps one multi-row insert under the postgres
// placeholder limit. Chunks still execute inside the same transaction, so
// batch atomicity is unaffected.
const maxRowsPerStatement = 500

// buildUpsert renders a multi-row INSERT ... ON CONFLICT statement for one
// chunk. Conflicting rows (matched on keyColumn) have only the updatable
// columns overwritten; updatable names outside the column allowlist are
// dropped, which also keeps caller input out of the generated SQL. With no
// updatable columns the statement degrades to DO NOTHING.
func buildUpsert(table, keyColumn string, columns []string, updatable []string, rowCount int) string {
	allowed := make(map[string]bool, len(columns))
	for _, c := range columns {
		allowed[c] = true
	}

	placeholders := make([]string, 0, rowCount)
	n := 1
	for i := 0; i < rowCount; i++ {
		row := make([]string, 0, len(columns))
		for range columns {
			row = append(row, fmt.Sprintf("$%d", n))
			n++
		}
		placeholders = append(placeholders, "("+strings.Join(row, ", ")+")")
	}

	assignments := make([]string, 0, len(updatable)+1)
	for _, col := range updatable {
		if col == keyColumn || !allowed[col] {
			continue
		}
		assignments = append(assignments, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}

	conflictAction := "DO NOTHING"
	if len(assignments) > 0 {
		assignments = append(assignments, "updated_at = NOW()")
		conflictAction = "DO UPDATE SET " + strings.Join(assignments, ", ")
	}

	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES %s ON CONFLICT (%s) %s",
		table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
		keyColumn,
		conflictAction,
	)
}

// chunkSize splits a batch into statement-sized pieces
func chunkSize(total int) []int {
	sizes := make([]int, 0, total/maxRowsPerStatement+1)
	for total > 0 {
		size := total
		if size > maxRowsPerStatement {
			size = maxRowsPerStatement
		}
		sizes = append(sizes, size)
		total -= size
	}
	return sizes
}
