package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"npricli/internal/analysis"
	"npricli/internal/config"
	"npricli/internal/dataprocessing"
	"npricli/internal/dataset"
	"npricli/internal/exporter"
	"npricli/internal/render"
)

// App orchestrates the analysis pipeline: load, clean, filter, aggregate,
// and write CSV and chart artifacts.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
}

// RunOptions selects the data slice and output location of one pipeline run.
// Year and Province are mutually exclusive filters; Year wins when both are
// set. Empty PollutantColumn and OutputDir fall back to the configuration.
type RunOptions struct {
	DataPath        string
	Year            *int
	Province        string
	PollutantColumn string
	OutputDir       string
}

// New creates the application. A nil logger falls back to slog.Default().
func New(cfg *config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{cfg: cfg, logger: logger}
}

// Run executes one full analysis over the given data file. Each stage feeds
// the next; any failure stops the run and is returned to the caller.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	pollutant := opts.PollutantColumn
	if pollutant == "" {
		pollutant = a.cfg.Analysis.PollutantColumn
	}
	outDir := opts.OutputDir
	if outDir == "" {
		outDir = a.cfg.Output.Dir
	}

	writer := exporter.NewCSVWriter(outDir, a.logger)
	renderer := render.NewRenderer(a.logger, render.Style{TopN: a.cfg.Analysis.TopN, Bins: a.cfg.Analysis.HistogramBins})

	a.logger.InfoContext(ctx, "starting analysis",
		slog.String("data_path", opts.DataPath),
		slog.String("pollutant_column", pollutant),
		slog.String("output_dir", outDir))

	raw, err := dataprocessing.Load(ctx, opts.DataPath)
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}

	cleaned := dataprocessing.Clean(raw)
	a.logger.InfoContext(ctx, "cleaned data",
		slog.Int("valid_records", cleaned.NumRows()))

	filtered, err := a.filter(ctx, cleaned, opts)
	if err != nil {
		return fmt.Errorf("filter data: %w", err)
	}
	a.logger.InfoContext(ctx, "working set ready",
		slog.Int("records", filtered.NumRows()))

	if err := writer.WriteTable("cleaned_data.csv", filtered); err != nil {
		return fmt.Errorf("export cleaned data: %w", err)
	}

	summary, err := analysis.SummarizePollutants(filtered, pollutant, "")
	if err != nil {
		return fmt.Errorf("summarize pollutants: %w", err)
	}
	if err := writer.WriteSummary("pollutant_summary.csv", "", summary); err != nil {
		return fmt.Errorf("export summary: %w", err)
	}

	if distinctYears(filtered) > 1 {
		trends, err := analysis.TrendAnalysis(filtered, pollutant, "", "")
		if err != nil {
			return fmt.Errorf("trend analysis: %w", err)
		}
		if err := writer.WriteTrends("pollutant_trends.csv", pollutant, "", trends); err != nil {
			return fmt.Errorf("export trends: %w", err)
		}
		if err := renderer.TrendChart(ctx, filtered, pollutant, "", "",
			filepath.Join(outDir, "pollutant_trend.png")); err != nil {
			return fmt.Errorf("render trend chart: %w", err)
		}
	}

	if filtered.HasColumn(dataprocessing.ProvinceColumn) {
		stats, err := analysis.CompareCategories(filtered, pollutant, dataprocessing.ProvinceColumn, "", nil)
		if err != nil {
			return fmt.Errorf("compare provinces: %w", err)
		}
		if err := writer.WriteComparison("province_comparison.csv", dataprocessing.ProvinceColumn, stats); err != nil {
			return fmt.Errorf("export province comparison: %w", err)
		}
		if err := renderer.CategoryBarChart(ctx, filtered, pollutant, dataprocessing.ProvinceColumn, "",
			filepath.Join(outDir, "province_comparison.png")); err != nil {
			return fmt.Errorf("render province chart: %w", err)
		}
	}

	if filtered.HasColumn("Facility_Name") {
		if err := renderer.FacilityBarChart(ctx, filtered, pollutant, "Facility_Name", "",
			filepath.Join(outDir, "facility_comparison.png")); err != nil {
			return fmt.Errorf("render facility chart: %w", err)
		}
	}

	if filtered.NumRows() > 0 {
		if err := renderer.DistributionHistogram(ctx, filtered, pollutant, a.cfg.Analysis.LogScale, "",
			filepath.Join(outDir, "pollutant_distribution.png")); err != nil {
			return fmt.Errorf("render distribution chart: %w", err)
		}

		outliers, err := analysis.IdentifyOutliers(filtered, pollutant,
			a.cfg.Analysis.OutlierMethod, a.cfg.Analysis.OutlierThreshold)
		if err != nil {
			return fmt.Errorf("identify outliers: %w", err)
		}
		if err := writer.WriteTable("outlier_report.csv", outliers); err != nil {
			return fmt.Errorf("export outlier report: %w", err)
		}
		a.logger.InfoContext(ctx, "flagged outliers",
			slog.String("method", a.cfg.Analysis.OutlierMethod),
			slog.Int("count", outliers.NumRows()))
	}

	a.logger.InfoContext(ctx, "analysis completed")
	return nil
}

// filter applies the year or province restriction from the run options.
func (a *App) filter(ctx context.Context, t *dataset.Table, opts RunOptions) (*dataset.Table, error) {
	switch {
	case opts.Year != nil:
		a.logger.InfoContext(ctx, "filtering by year", slog.Int("year", *opts.Year))
		return dataprocessing.FilterByYear(t, *opts.Year)
	case opts.Province != "":
		a.logger.InfoContext(ctx, "filtering by province", slog.String("province", opts.Province))
		return dataprocessing.FilterByProvince(t, opts.Province)
	default:
		return t, nil
	}
}

// distinctYears counts the distinct numeric reporting years in the table.
func distinctYears(t *dataset.Table) int {
	values, _ := t.NumericColumn(dataprocessing.YearColumn)
	seen := make(map[float64]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}
