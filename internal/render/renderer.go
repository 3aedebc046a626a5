package render

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"npricli/internal/dataset"
	apperrors "npricli/internal/errors"
)

// Renderer produces chart artifacts from raw or aggregated tables. It only
// groups and sorts; all statistics are computed upstream.
type Renderer struct {
	logger *slog.Logger
	style  Style
}

// NewRenderer creates a renderer with the given style. Zero style fields fall
// back to defaults, and a nil logger falls back to slog.Default().
func NewRenderer(logger *slog.Logger, style Style) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{logger: logger, style: style.normalize()}
}

// TrendChart writes a line chart of the per-year mean of valueCol. An empty
// yearCol falls back to Reporting_Year, an empty title to a generated one.
// At least two years of data are required to draw a line.
func (r *Renderer) TrendChart(ctx context.Context, t *dataset.Table, valueCol, yearCol, title, path string) error {
	if yearCol == "" {
		yearCol = "Reporting_Year"
	}
	if title == "" {
		title = fmt.Sprintf("Trend of %s Over Time", valueCol)
	}

	years, means := yearlyMeans(t, valueCol, yearCol)
	if len(years) < 2 {
		return apperrors.NewParsingError(
			fmt.Sprintf("trend chart requires at least two years, got %d", len(years)), nil)
	}

	graph := chart.Chart{
		Title:  title,
		Width:  r.style.Width,
		Height: r.style.Height,
		XAxis:  chart.XAxis{Name: "Year"},
		YAxis:  chart.YAxis{Name: fmt.Sprintf("%s (Mean Value)", valueCol)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    valueCol,
				XValues: years,
				YValues: means,
				Style: chart.Style{
					StrokeWidth: r.style.StrokeWidth,
					StrokeColor: r.style.SeriesColor,
					DotWidth:    r.style.DotWidth,
					DotColor:    r.style.SeriesColor,
				},
			},
		},
	}

	return r.writeChart(ctx, path, "trend", func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

// CategoryBarChart writes a vertical bar chart of the top-N categories by
// summed value, largest first.
func (r *Renderer) CategoryBarChart(ctx context.Context, t *dataset.Table, valueCol, categoryCol, title, path string) error {
	if title == "" {
		title = fmt.Sprintf("Top %d %s by Total %s", r.style.TopN, categoryCol, valueCol)
	}

	totals := groupTotals(t, valueCol, categoryCol)
	if len(totals) > r.style.TopN {
		totals = totals[:r.style.TopN]
	}
	if len(totals) == 0 {
		return apperrors.NewParsingError(
			fmt.Sprintf("no data to chart for column %q", categoryCol), nil)
	}

	bars := make([]chart.Value, 0, len(totals))
	for _, g := range totals {
		bars = append(bars, chart.Value{Label: g.key, Value: g.sum})
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    r.style.Width,
		Height:   r.style.Height,
		BarWidth: r.style.BarWidth,
		XAxis:    chart.Style{},
		YAxis:    chart.YAxis{Name: fmt.Sprintf("Total %s", valueCol)},
		Bars:     bars,
	}

	return r.writeChart(ctx, path, "category comparison", func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

// FacilityBarChart writes a horizontal bar chart of the top-N facilities by
// summed value, largest at the top.
func (r *Renderer) FacilityBarChart(ctx context.Context, t *dataset.Table, valueCol, facilityCol, title, path string) error {
	if title == "" {
		title = fmt.Sprintf("Top %d %s by Total %s", r.style.TopN, facilityCol, valueCol)
	}

	totals := groupTotals(t, valueCol, facilityCol)
	if len(totals) > r.style.TopN {
		totals = totals[:r.style.TopN]
	}
	if len(totals) == 0 {
		return apperrors.NewParsingError(
			fmt.Sprintf("no data to chart for column %q", facilityCol), nil)
	}

	bars := make([]chart.StackedBar, 0, len(totals))
	for _, g := range totals {
		bars = append(bars, chart.StackedBar{
			Name:  g.key,
			Width: r.style.BarWidth,
			Values: []chart.Value{
				{Label: formatTick(g.sum), Value: g.sum, Style: chart.Style{FillColor: r.style.SeriesColor}},
			},
		})
	}

	graph := chart.StackedBarChart{
		Title:        title,
		Width:        r.style.Width,
		Height:       r.style.Height,
		BarSpacing:   r.style.BarSpacing,
		IsHorizontal: true,
		XAxis:        chart.Shown(),
		YAxis:        chart.Shown(),
		Bars:         bars,
	}

	return r.writeChart(ctx, path, "facility comparison", func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

// DistributionHistogram writes a histogram of the column's numeric values.
// With logScale set, bins are laid out in log10 space and non-positive values
// are excluded first.
func (r *Renderer) DistributionHistogram(ctx context.Context, t *dataset.Table, column string, logScale bool, title, path string) error {
	if title == "" {
		title = fmt.Sprintf("Distribution of %s", column)
	}

	values, _ := t.NumericColumn(column)
	if logScale {
		positive := values[:0:0]
		for _, v := range values {
			if v > 0 {
				positive = append(positive, v)
			}
		}
		values = positive
	}
	if len(values) == 0 {
		return apperrors.NewParsingError(
			fmt.Sprintf("no values to chart for column %q", column), nil)
	}

	bars := histogramBars(values, r.style.Bins, logScale)

	graph := chart.BarChart{
		Title:    title,
		Width:    r.style.Width,
		Height:   r.style.Height,
		BarWidth: max(r.style.Width/(2*len(bars)), 1),
		XAxis:    chart.Style{},
		YAxis:    chart.YAxis{Name: "Frequency"},
		Bars:     bars,
	}

	return r.writeChart(ctx, path, "distribution", func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

// writeChart creates the target file and delegates PNG rendering, logging the
// artifact kind and destination.
func (r *Renderer) writeChart(ctx context.Context, path, kind string, renderTo func(*os.File) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create chart output directory", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("failed to create chart file", err)
	}
	defer file.Close()

	if err := renderTo(file); err != nil {
		return fmt.Errorf("failed to render %s chart: %w", kind, err)
	}

	r.logger.InfoContext(ctx, "wrote chart artifact",
		slog.String("kind", kind),
		slog.String("path", path))
	return nil
}

// groupTotal is one category and its summed value.
type groupTotal struct {
	key string
	sum float64
}

// groupTotals sums valueCol per distinct keyCol value, descending by sum.
// Rows with a missing key are skipped.
func groupTotals(t *dataset.Table, valueCol, keyCol string) []groupTotal {
	sums := make(map[string]float64)
	var keys []string
	for i := 0; i < t.NumRows(); i++ {
		key := t.Value(i, keyCol)
		if key.IsMissing() {
			continue
		}
		label := key.String()
		if _, seen := sums[label]; !seen {
			keys = append(keys, label)
			sums[label] = 0
		}
		if f, ok := t.Value(i, valueCol).Float(); ok {
			sums[label] += f
		}
	}
	sort.Strings(keys)

	totals := make([]groupTotal, 0, len(keys))
	for _, key := range keys {
		totals = append(totals, groupTotal{key: key, sum: sums[key]})
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].sum > totals[j].sum
	})
	return totals
}

// yearlyMeans computes the mean of valueCol per year, years ascending. Rows
// with a non-numeric year are skipped.
func yearlyMeans(t *dataset.Table, valueCol, yearCol string) (years, means []float64) {
	sums := make(map[float64]float64)
	counts := make(map[float64]int)
	for i := 0; i < t.NumRows(); i++ {
		year, ok := t.Value(i, yearCol).Float()
		if !ok {
			continue
		}
		if f, ok := t.Value(i, valueCol).Float(); ok {
			sums[year] += f
			counts[year]++
		}
	}

	for year := range counts {
		years = append(years, year)
	}
	sort.Float64s(years)
	for _, year := range years {
		means = append(means, sums[year]/float64(counts[year]))
	}
	return years, means
}

// histogramBars bins values into equal-width intervals, in log10 space when
// logScale is set, and returns one bar per bin labeled with its lower edge.
func histogramBars(values []float64, bins int, logScale bool) []chart.Value {
	transform := func(v float64) float64 { return v }
	invert := transform
	if logScale {
		transform = math.Log10
		invert = func(v float64) float64 { return math.Pow(10, v) }
	}

	lo, hi := transform(values[0]), transform(values[0])
	for _, v := range values[1:] {
		tv := transform(v)
		if tv < lo {
			lo = tv
		}
		if tv > hi {
			hi = tv
		}
	}

	if lo == hi {
		return []chart.Value{{Label: formatTick(invert(lo)), Value: float64(len(values))}}
	}

	width := (hi - lo) / float64(bins)
	counts := make([]int, bins)
	for _, v := range values {
		bin := int((transform(v) - lo) / width)
		if bin >= bins {
			bin = bins - 1
		}
		counts[bin]++
	}

	bars := make([]chart.Value, bins)
	for i, count := range counts {
		bars[i] = chart.Value{
			Label: formatTick(invert(lo + float64(i)*width)),
			Value: float64(count),
		}
	}
	return bars
}

// formatTick renders an axis label with three significant digits.
func formatTick(v float64) string {
	return strconv.FormatFloat(v, 'g', 3, 64)
}
