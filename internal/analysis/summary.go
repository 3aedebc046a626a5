package analysis

import (
	"sort"

	"npricli/internal/dataset"
	apperrors "npricli/internal/errors"
)

// SummaryRow carries the eight descriptive statistics for one group of rows,
// or for the whole table when no grouping column is used. Undefined
// statistics (for example the standard deviation of a single value) are NaN.
type SummaryRow struct {
	Group  string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// SummarizePollutants computes descriptive statistics for a pollutant value
// column. When groupCol is non-empty the table is partitioned by its distinct
// values and one row is produced per partition, sorted by group key; otherwise
// a single row labeled with the value column covers the whole table. Rows
// whose group key is missing are excluded from grouped results. Fails with a
// MISSING_COLUMN error when a named column is absent.
func SummarizePollutants(t *dataset.Table, valueCol, groupCol string) ([]SummaryRow, error) {
	if !t.HasColumn(valueCol) {
		return nil, apperrors.NewMissingColumnError(valueCol)
	}

	if groupCol == "" {
		values, _ := t.NumericColumn(valueCol)
		return []SummaryRow{describe(valueCol, values)}, nil
	}

	if !t.HasColumn(groupCol) {
		return nil, apperrors.NewMissingColumnError(groupCol)
	}

	groups := make(map[string][]float64)
	var keys []string
	for i := 0; i < t.NumRows(); i++ {
		key := t.Value(i, groupCol)
		if key.IsMissing() {
			continue
		}
		label := key.String()
		if _, seen := groups[label]; !seen {
			keys = append(keys, label)
		}
		values := groups[label]
		if f, ok := t.Value(i, valueCol).Float(); ok {
			values = append(values, f)
		}
		groups[label] = values
	}
	sort.Strings(keys)

	rows := make([]SummaryRow, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, describe(key, groups[key]))
	}
	return rows, nil
}

// describe computes the eight descriptive statistics over one set of values.
func describe(label string, values []float64) SummaryRow {
	lo, hi := minMax(values)
	return SummaryRow{
		Group:  label,
		Count:  len(values),
		Mean:   mean(values),
		Std:    sampleStd(values),
		Min:    lo,
		Q1:     quantile(values, 0.25),
		Median: quantile(values, 0.5),
		Q3:     quantile(values, 0.75),
		Max:    hi,
	}
}
