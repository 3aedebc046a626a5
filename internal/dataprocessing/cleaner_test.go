package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"npricli/internal/dataset"
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

func TestClean_NormalizesColumnNames(t *testing.T) {
	raw := buildTable(t, []string{" Reporting Year ", "Province  Code", "Total Release"})

	cleaned := Clean(raw)

	assert.Equal(t, []string{"Reporting_Year", "Province__Code", "Total_Release"}, cleaned.Columns())
	// The input keeps its original columns.
	assert.Equal(t, []string{" Reporting Year ", "Province  Code", "Total Release"}, raw.Columns())
}

func TestClean_CoercesReportingYear(t *testing.T) {
	raw := buildTable(t, []string{"Reporting Year", "Total Release"},
		[]string{"2020", "10"},
		[]string{"not-a-year", "20"},
		[]string{"", "30"},
	)

	cleaned := Clean(raw)

	assert.Equal(t, dataset.Number(2020), cleaned.Value(0, "Reporting_Year"))
	assert.True(t, cleaned.Value(1, "Reporting_Year").IsMissing())
	assert.True(t, cleaned.Value(2, "Reporting_Year").IsMissing())
	// Other text columns are not coerced.
	assert.Equal(t, dataset.Number(20), cleaned.Value(1, "Total_Release"))
}

func TestClean_DropsFullyEmptyRows(t *testing.T) {
	raw := buildTable(t, []string{"Reporting Year", "Province"},
		[]string{"2020", "ON"},
		[]string{"", ""},
		[]string{"", "AB"},
	)

	cleaned := Clean(raw)

	require.Equal(t, 2, cleaned.NumRows())
	assert.Equal(t, dataset.Text("ON"), cleaned.Value(0, "Province"))
	assert.Equal(t, dataset.Text("AB"), cleaned.Value(1, "Province"))
}

func TestClean_Idempotent(t *testing.T) {
	raw := buildTable(t, []string{"Reporting Year", " Province", "Total Release"},
		[]string{"2020", "ON", "1.5"},
		[]string{"", "", ""},
		[]string{"bad", "AB", "2,000"},
	)

	once := Clean(raw)
	twice := Clean(once)

	assert.True(t, once.Equal(twice))
}

func TestClean_DisambiguatesDuplicateNames(t *testing.T) {
	raw := buildTable(t, []string{"Total Release", "Total_Release"})

	cleaned := Clean(raw)

	assert.Equal(t, []string{"Total_Release", "Total_Release_2"}, cleaned.Columns())
}
