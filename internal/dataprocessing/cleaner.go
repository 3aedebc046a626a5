package dataprocessing

import (
	"fmt"
	"strings"

	"npricli/internal/dataset"
)

// YearColumn is the normalized name of the reporting year column.
const YearColumn = "Reporting_Year"

// Clean normalizes a freshly loaded table: column names get surrounding
// whitespace removed and interior spaces replaced with underscores, the
// reporting year column (when present) is coerced to numeric with unparsable
// entries degrading to missing, rows whose every cell is missing are dropped,
// and row positions are renumbered contiguously from zero. The input table is
// left untouched. Cleaning never fails and is idempotent.
func Clean(t *dataset.Table) *dataset.Table {
	columns := normalizeColumns(t.Columns())

	out, _ := dataset.New(columns)
	yearIdx := -1
	for i, name := range columns {
		if name == YearColumn {
			yearIdx = i
			break
		}
	}

	for i := 0; i < t.NumRows(); i++ {
		row := t.Row(i)
		if yearIdx >= 0 {
			row[yearIdx] = row[yearIdx].Coerce()
		}
		if allMissing(row) {
			continue
		}
		out.AppendRow(row)
	}

	return out
}

// normalizeColumns standardizes column names. When two names collapse to the
// same normalized form, later ones get a numeric suffix so the uniqueness
// invariant holds without an error path.
func normalizeColumns(columns []string) []string {
	out := make([]string, len(columns))
	seen := make(map[string]int, len(columns))
	for i, name := range columns {
		normalized := strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
		if n, dup := seen[normalized]; dup {
			base := normalized
			for {
				n++
				normalized = fmt.Sprintf("%s_%d", base, n)
				if _, taken := seen[normalized]; !taken {
					break
				}
			}
			seen[base] = n
		}
		seen[normalized] = 1
		out[i] = normalized
	}
	return out
}

// allMissing reports whether every cell of a row is missing.
func allMissing(row []dataset.Value) bool {
	for _, v := range row {
		if !v.IsMissing() {
			return false
		}
	}
	return true
}
