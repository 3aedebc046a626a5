package analysis

import (
	"math"
	"strings"

	"npricli/internal/dataset"
	apperrors "npricli/internal/errors"
)

// Outlier detection method names, matched case-insensitively.
const (
	MethodIQR    = "iqr"
	MethodZScore = "zscore"
)

// IdentifyOutliers flags rows whose value in the given column is extreme
// under the chosen rule.
//
// The IQR method computes [Q1 - threshold*IQR, Q3 + threshold*IQR] over the
// column's non-missing numeric values and returns the rows strictly outside
// those bounds. The zscore method drops missing values, computes the
// population standard score of each remaining value, and returns the rows
// whose absolute score exceeds the threshold; flagged rows are re-aligned to
// their original row identity in the input table, not to the compacted
// post-drop index. A zero standard deviation flags nothing.
//
// Any method other than "iqr" or "zscore" fails with an INVALID_METHOD error;
// an absent column fails with MISSING_COLUMN.
func IdentifyOutliers(t *dataset.Table, column, method string, threshold float64) (*dataset.Table, error) {
	if !t.HasColumn(column) {
		return nil, apperrors.NewMissingColumnError(column)
	}

	values, rows := t.NumericColumn(column)

	switch strings.ToLower(method) {
	case MethodIQR:
		q1 := quantile(values, 0.25)
		q3 := quantile(values, 0.75)
		iqr := q3 - q1
		lower := q1 - threshold*iqr
		upper := q3 + threshold*iqr

		var flagged []int
		for i, v := range values {
			if v < lower || v > upper {
				flagged = append(flagged, rows[i])
			}
		}
		return t.Select(flagged), nil

	case MethodZScore:
		m := mean(values)
		std := populationStd(values)
		if std == 0 || math.IsNaN(std) {
			return t.Select(nil), nil
		}

		var flagged []int
		for i, v := range values {
			if math.Abs((v-m)/std) > threshold {
				flagged = append(flagged, rows[i])
			}
		}
		return t.Select(flagged), nil

	default:
		return nil, apperrors.NewInvalidMethodError(method)
	}
}
