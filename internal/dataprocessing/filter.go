package dataprocessing

import (
	"npricli/internal/dataset"
	apperrors "npricli/internal/errors"
)

// ProvinceColumn is the normalized name of the province code column.
const ProvinceColumn = "Province"

// FilterByYear returns the subset of rows whose reporting year equals the
// given year, renumbered from zero. It fails with a MISSING_COLUMN error when
// the table has no reporting year column.
func FilterByYear(t *dataset.Table, year int) (*dataset.Table, error) {
	if !t.HasColumn(YearColumn) {
		return nil, apperrors.NewMissingColumnError(YearColumn)
	}

	var rows []int
	for i := 0; i < t.NumRows(); i++ {
		if f, ok := t.Value(i, YearColumn).Float(); ok && f == float64(year) {
			rows = append(rows, i)
		}
	}
	return t.Select(rows), nil
}

// FilterByProvince returns the subset of rows whose province code exactly
// equals the given code, renumbered from zero. It fails with a MISSING_COLUMN
// error when the table has no province column. Matching is exact, no
// partial or fuzzy matching.
func FilterByProvince(t *dataset.Table, province string) (*dataset.Table, error) {
	if !t.HasColumn(ProvinceColumn) {
		return nil, apperrors.NewMissingColumnError(ProvinceColumn)
	}

	match := dataset.Text(province)
	var rows []int
	for i := 0; i < t.NumRows(); i++ {
		if t.Value(i, ProvinceColumn).Equal(match) {
			rows = append(rows, i)
		}
	}
	return t.Select(rows), nil
}
