package dataprocessing

import (
	"time"

	"npricli/internal/dataset"
)

// YearsSinceReportColumn is the derived report-age column added by
// PrepareForAnalysis.
const YearsSinceReportColumn = "Years_Since_Report"

// identifierColumns are the columns coerced to numeric before analysis.
var identifierColumns = []string{YearColumn, "NPRI_ID"}

// PrepareForAnalysis coerces identifier columns to numeric and, when a
// reporting year column exists, appends a derived column with the number of
// years since the report. Coercion failures degrade to missing values.
func PrepareForAnalysis(t *dataset.Table) *dataset.Table {
	columns := t.Columns()
	hasYear := t.HasColumn(YearColumn)
	if hasYear {
		columns = append(columns, YearsSinceReportColumn)
	}

	coerce := make(map[int]bool)
	for _, name := range identifierColumns {
		if i, ok := t.ColumnIndex(name); ok {
			coerce[i] = true
		}
	}

	out, _ := dataset.New(columns)
	yearIdx, _ := t.ColumnIndex(YearColumn)
	currentYear := float64(time.Now().Year())

	for i := 0; i < t.NumRows(); i++ {
		row := t.Row(i)
		for col := range coerce {
			row[col] = row[col].Coerce()
		}
		if hasYear {
			age := dataset.Missing()
			if year, ok := row[yearIdx].Float(); ok {
				age = dataset.Number(currentYear - year)
			}
			row = append(row, age)
		}
		out.AppendRow(row)
	}

	return out
}
