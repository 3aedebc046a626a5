package analysis

import (
	"math"
	"sort"

	"npricli/internal/dataset"
	apperrors "npricli/internal/errors"
)

// CategoryStat carries the comparison statistics of one category, including
// its share of the grand total and the running cumulative share in
// sum-descending order.
type CategoryStat struct {
	Category          string
	Count             int
	Sum               float64
	Mean              float64
	Median            float64
	Std               float64
	PercentOfTotal    float64
	CumulativePercent float64
}

// CompareCategories ranks the distinct values of a category column by the
// summed value column. When yearFilter is non-nil and the year column exists
// the table is first restricted to that year; an absent year column silently
// disables the filter. Results are sorted descending by sum, then annotated
// with percent-of-total and cumulative percent in that order. A zero grand
// total leaves every percentage NaN. Fails with a MISSING_COLUMN error when
// the value or category column is absent.
func CompareCategories(t *dataset.Table, valueCol, categoryCol, yearCol string, yearFilter *int) ([]CategoryStat, error) {
	if !t.HasColumn(valueCol) {
		return nil, apperrors.NewMissingColumnError(valueCol)
	}
	if !t.HasColumn(categoryCol) {
		return nil, apperrors.NewMissingColumnError(categoryCol)
	}
	if yearCol == "" {
		yearCol = DefaultYearColumn
	}

	groups := make(map[string][]float64)
	var keys []string
	for i := 0; i < t.NumRows(); i++ {
		if yearFilter != nil && t.HasColumn(yearCol) {
			if y, ok := t.Value(i, yearCol).Float(); !ok || y != float64(*yearFilter) {
				continue
			}
		}

		key := t.Value(i, categoryCol)
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

	stats := make([]CategoryStat, 0, len(keys))
	for _, key := range keys {
		values := groups[key]
		stats = append(stats, CategoryStat{
			Category: key,
			Count:    len(values),
			Sum:      sum(values),
			Mean:     mean(values),
			Median:   quantile(values, 0.5),
			Std:      sampleStd(values),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Sum > stats[j].Sum
	})

	var total float64
	for _, s := range stats {
		total += s.Sum
	}

	cumulative := 0.0
	for i := range stats {
		if total == 0 {
			stats[i].PercentOfTotal = math.NaN()
			stats[i].CumulativePercent = math.NaN()
			continue
		}
		stats[i].PercentOfTotal = stats[i].Sum / total * 100
		cumulative += stats[i].PercentOfTotal
		stats[i].CumulativePercent = cumulative
	}

	return stats, nil
}
