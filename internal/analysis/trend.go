package analysis

import (
	"math"
	"sort"

	"npricli/internal/dataset"
	apperrors "npricli/internal/errors"
)

// DefaultYearColumn is the year column used when a trend or comparison
// operation is not given one explicitly.
const DefaultYearColumn = "Reporting_Year"

// TrendPoint is one (year, group) entry of a trend analysis: the mean value
// for that year plus its absolute and percent change versus the immediately
// preceding year of the same group. The first year of each group has NaN
// changes, as does any percent change whose base year mean is zero.
type TrendPoint struct {
	Year           int
	Group          string
	Mean           float64
	AbsoluteChange float64
	PercentChange  float64
}

// TrendAnalysis computes the per-year mean of a value column and its
// year-over-year deltas. When groupCol is non-empty each group is processed
// independently, groups ordered by first appearance in year-ascending order,
// years ascending within a group. Rows with a missing or non-numeric year are
// excluded. An empty yearCol falls back to DefaultYearColumn. Fails with a
// MISSING_COLUMN error when a named column is absent.
func TrendAnalysis(t *dataset.Table, valueCol, yearCol, groupCol string) ([]TrendPoint, error) {
	if yearCol == "" {
		yearCol = DefaultYearColumn
	}
	if !t.HasColumn(yearCol) {
		return nil, apperrors.NewMissingColumnError(yearCol)
	}
	if !t.HasColumn(valueCol) {
		return nil, apperrors.NewMissingColumnError(valueCol)
	}
	if groupCol != "" && !t.HasColumn(groupCol) {
		return nil, apperrors.NewMissingColumnError(groupCol)
	}

	type cellKey struct {
		year  int
		group string
	}
	type acc struct {
		sum   float64
		count int
	}

	cells := make(map[cellKey]*acc)
	groupYears := make(map[string][]int)
	var groupOrder []string

	for i := 0; i < t.NumRows(); i++ {
		yearValue, ok := t.Value(i, yearCol).Float()
		if !ok {
			continue
		}
		year := int(yearValue)

		group := ""
		if groupCol != "" {
			g := t.Value(i, groupCol)
			if g.IsMissing() {
				continue
			}
			group = g.String()
		}

		key := cellKey{year: year, group: group}
		cell, seen := cells[key]
		if !seen {
			cell = &acc{}
			cells[key] = cell
			if len(groupYears[group]) == 0 {
				groupOrder = append(groupOrder, group)
			}
			groupYears[group] = append(groupYears[group], year)
		}
		if f, ok := t.Value(i, valueCol).Float(); ok {
			cell.sum += f
			cell.count++
		}
	}

	// Group order follows the first appearance of each group after sorting
	// all observed years ascending.
	sort.SliceStable(groupOrder, func(i, j int) bool {
		return firstYear(groupYears[groupOrder[i]]) < firstYear(groupYears[groupOrder[j]])
	})

	var points []TrendPoint
	for _, group := range groupOrder {
		years := groupYears[group]
		sort.Ints(years)

		prev := math.NaN()
		for i, year := range years {
			cell := cells[cellKey{year: year, group: group}]
			m := math.NaN()
			if cell.count > 0 {
				m = cell.sum / float64(cell.count)
			}

			point := TrendPoint{
				Year:           year,
				Group:          group,
				Mean:           m,
				AbsoluteChange: math.NaN(),
				PercentChange:  math.NaN(),
			}
			if i > 0 {
				point.AbsoluteChange = m - prev
				if prev != 0 {
					point.PercentChange = (m/prev - 1) * 100
				}
			}
			points = append(points, point)
			prev = m
		}
	}

	return points, nil
}

// firstYear returns the smallest year of a group's observations.
func firstYear(years []int) int {
	lo := years[0]
	for _, y := range years[1:] {
		if y < lo {
			lo = y
		}
	}
	return lo
}
