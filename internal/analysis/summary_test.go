package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"npricli/internal/dataset"
	apperrors "npricli/internal/errors"
)

// buildTable constructs a table from raw cell strings, classifying each cell
// the way the loader does.
func buildTable(t *testing.T, columns []string, rows ...[]string) *dataset.Table {
	t.Helper()
	table, err := dataset.New(columns)
	require.NoError(t, err)
	for _, row := range rows {
		values := make([]dataset.Value, len(row))
		for i, cell := range row {
			values[i] = dataset.ParseValue(cell)
		}
		table.AppendRow(values)
	}
	return table
}

func TestSummarizePollutants_Ungrouped(t *testing.T) {
	table := buildTable(t, []string{"Total_Release"},
		[]string{"1"}, []string{"2"}, []string{"3"}, []string{"4"},
	)

	rows, err := SummarizePollutants(table, "Total_Release", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "Total_Release", row.Group)
	assert.Equal(t, 4, row.Count)
	assert.InDelta(t, 2.5, row.Mean, 1e-9)
	assert.InDelta(t, 1.2909944487, row.Std, 1e-9)
	assert.Equal(t, 1.0, row.Min)
	assert.InDelta(t, 1.75, row.Q1, 1e-9)
	assert.InDelta(t, 2.5, row.Median, 1e-9)
	assert.InDelta(t, 3.25, row.Q3, 1e-9)
	assert.Equal(t, 4.0, row.Max)
}

func TestSummarizePollutants_SingleValue(t *testing.T) {
	table := buildTable(t, []string{"Total_Release"}, []string{"42"})

	rows, err := SummarizePollutants(table, "Total_Release", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 1, row.Count)
	assert.Equal(t, 42.0, row.Mean)
	assert.Equal(t, 42.0, row.Min)
	assert.Equal(t, 42.0, row.Max)
	assert.True(t, math.IsNaN(row.Std))
}

func TestSummarizePollutants_Grouped(t *testing.T) {
	table := buildTable(t, []string{"Province", "Total_Release"},
		[]string{"ON", "10"},
		[]string{"AB", "5"},
		[]string{"ON", "20"},
		[]string{"AB", "15"},
		[]string{"", "999"},
	)

	rows, err := SummarizePollutants(table, "Total_Release", "Province")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Groups sorted by key; rows with a missing group key are excluded.
	assert.Equal(t, "AB", rows[0].Group)
	assert.Equal(t, 2, rows[0].Count)
	assert.InDelta(t, 10.0, rows[0].Mean, 1e-9)

	assert.Equal(t, "ON", rows[1].Group)
	assert.InDelta(t, 15.0, rows[1].Mean, 1e-9)
}

func TestSummarizePollutants_GroupWithNoNumericValues(t *testing.T) {
	table := buildTable(t, []string{"Province", "Total_Release"},
		[]string{"ON", "10"},
		[]string{"AB", ""},
	)

	rows, err := SummarizePollutants(table, "Total_Release", "Province")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "AB", rows[0].Group)
	assert.Equal(t, 0, rows[0].Count)
	assert.True(t, math.IsNaN(rows[0].Mean))
	assert.True(t, math.IsNaN(rows[0].Median))
}

func TestSummarizePollutants_MissingColumns(t *testing.T) {
	table := buildTable(t, []string{"Total_Release"}, []string{"1"})

	_, err := SummarizePollutants(table, "Unknown", "")
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeMissingColumn))

	_, err = SummarizePollutants(table, "Total_Release", "Province")
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeMissingColumn))
}
