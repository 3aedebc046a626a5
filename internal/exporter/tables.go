package exporter

import (
	"math"
	"strconv"

	"npricli/internal/analysis"
	"npricli/internal/dataset"
)

// WriteSummary writes descriptive statistics rows with the standard column
// set. The group header names the grouping column, or "Pollutant" for an
// ungrouped summary.
func (w *CSVWriter) WriteSummary(name, groupHeader string, rows []analysis.SummaryRow) error {
	if groupHeader == "" {
		groupHeader = "Pollutant"
	}
	headers := []string{groupHeader, "Count", "Mean", "Std", "Min", "Q1", "Median", "Q3", "Max"}

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			row.Group,
			strconv.Itoa(row.Count),
			formatFloat(row.Mean),
			formatFloat(row.Std),
			formatFloat(row.Min),
			formatFloat(row.Q1),
			formatFloat(row.Median),
			formatFloat(row.Q3),
			formatFloat(row.Max),
		})
	}
	return w.WriteSimpleCSV(name, headers, records)
}

// WriteTrends writes trend analysis points. The group column is omitted for
// ungrouped trends.
func (w *CSVWriter) WriteTrends(name, valueHeader, groupHeader string, points []analysis.TrendPoint) error {
	headers := []string{"Reporting_Year"}
	if groupHeader != "" {
		headers = append(headers, groupHeader)
	}
	headers = append(headers, valueHeader, "Absolute_Change", "Percent_Change")

	records := make([][]string, 0, len(points))
	for _, p := range points {
		record := []string{strconv.Itoa(p.Year)}
		if groupHeader != "" {
			record = append(record, p.Group)
		}
		record = append(record,
			formatFloat(p.Mean),
			formatFloat(p.AbsoluteChange),
			formatFloat(p.PercentChange),
		)
		records = append(records, record)
	}
	return w.WriteSimpleCSV(name, headers, records)
}

// WriteComparison writes ranked category comparison rows.
func (w *CSVWriter) WriteComparison(name, categoryHeader string, stats []analysis.CategoryStat) error {
	headers := []string{categoryHeader, "count", "sum", "mean", "median", "std",
		"percent_of_total", "cumulative_percent"}

	records := make([][]string, 0, len(stats))
	for _, s := range stats {
		records = append(records, []string{
			s.Category,
			strconv.Itoa(s.Count),
			formatFloat(s.Sum),
			formatFloat(s.Mean),
			formatFloat(s.Median),
			formatFloat(s.Std),
			formatFloat(s.PercentOfTotal),
			formatFloat(s.CumulativePercent),
		})
	}
	return w.WriteSimpleCSV(name, headers, records)
}

// WriteTable streams a whole table to CSV, rendering missing cells as empty
// strings.
func (w *CSVWriter) WriteTable(name string, t *dataset.Table) error {
	stream, err := w.CreateStreamWriter(name, t.Columns())
	if err != nil {
		return err
	}

	for i := 0; i < t.NumRows(); i++ {
		row := t.Row(i)
		record := make([]string, len(row))
		for j, v := range row {
			record[j] = v.String()
		}
		if err := stream.WriteRecord(record); err != nil {
			stream.Close()
			return err
		}
	}
	return stream.Close()
}

// formatFloat renders a statistic for CSV output; undefined values (NaN or
// infinite) render as the empty cell.
func formatFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
