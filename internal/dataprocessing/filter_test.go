package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"npricli/internal/dataset"
	apperrors "npricli/internal/errors"
)

func TestFilterByYear(t *testing.T) {
	table := buildTable(t, []string{"Reporting_Year", "Province"},
		[]string{"2019", "ON"},
		[]string{"2020", "AB"},
		[]string{"2020", "QC"},
		[]string{"", "BC"},
	)

	filtered, err := FilterByYear(table, 2020)
	require.NoError(t, err)

	require.Equal(t, 2, filtered.NumRows())
	for i := 0; i < filtered.NumRows(); i++ {
		assert.Equal(t, dataset.Number(2020), filtered.Value(i, "Reporting_Year"))
	}
	assert.LessOrEqual(t, filtered.NumRows(), table.NumRows())
}

func TestFilterByYear_NoMatches(t *testing.T) {
	table := buildTable(t, []string{"Reporting_Year"}, []string{"2019"})

	filtered, err := FilterByYear(table, 1993)
	require.NoError(t, err)
	assert.Equal(t, 0, filtered.NumRows())
}

func TestFilterByYear_MissingColumn(t *testing.T) {
	table := buildTable(t, []string{"Province"}, []string{"ON"})

	_, err := FilterByYear(table, 2020)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeMissingColumn))
}

func TestFilterByProvince(t *testing.T) {
	table := buildTable(t, []string{"Province", "Total_Release"},
		[]string{"ON", "1"},
		[]string{"ONT", "2"},
		[]string{"ON", "3"},
	)

	filtered, err := FilterByProvince(table, "ON")
	require.NoError(t, err)

	// Exact match only, no prefix matching.
	require.Equal(t, 2, filtered.NumRows())
	assert.Equal(t, dataset.Number(1), filtered.Value(0, "Total_Release"))
	assert.Equal(t, dataset.Number(3), filtered.Value(1, "Total_Release"))
}

func TestFilterByProvince_MissingColumn(t *testing.T) {
	table := buildTable(t, []string{"Reporting_Year"}, []string{"2020"})

	_, err := FilterByProvince(table, "ON")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeMissingColumn))
}
