package dataprocessing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"npricli/internal/dataset"
)

func TestPrepareForAnalysis(t *testing.T) {
	table := buildTable(t, []string{"Reporting_Year", "NPRI_ID", "Province"},
		[]string{"2020", "12345", "ON"},
		[]string{"oops", "abc", "AB"},
	)

	prepared := PrepareForAnalysis(table)

	require.True(t, prepared.HasColumn(YearsSinceReportColumn))

	currentYear := float64(time.Now().Year())
	assert.Equal(t, dataset.Number(currentYear-2020), prepared.Value(0, YearsSinceReportColumn))
	assert.Equal(t, dataset.Number(12345), prepared.Value(0, "NPRI_ID"))

	assert.True(t, prepared.Value(1, "Reporting_Year").IsMissing())
	assert.True(t, prepared.Value(1, "NPRI_ID").IsMissing())
	assert.True(t, prepared.Value(1, YearsSinceReportColumn).IsMissing())
}

func TestPrepareForAnalysis_NoYearColumn(t *testing.T) {
	table := buildTable(t, []string{"Province"}, []string{"ON"})

	prepared := PrepareForAnalysis(table)

	assert.False(t, prepared.HasColumn(YearsSinceReportColumn))
	assert.Equal(t, 1, prepared.NumRows())
}
