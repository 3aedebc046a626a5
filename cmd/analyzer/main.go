package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"npricli/internal/app"
	"npricli/internal/config"
	"npricli/internal/infrastructure"
)

func main() {
	dataPath := flag.String("data", "", "path to the NPRI data file (.csv, .xlsx, .xls)")
	year := flag.Int("year", 0, "specific reporting year to analyze")
	province := flag.String("province", "", "province code to filter (e.g. ON, AB)")
	pollutant := flag.String("pollutant", "", "column name for pollutant values (default Total_Release)")
	outDir := flag.String("out", "", "directory to save output files (default output)")
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	if *dataPath == "" {
		fmt.Fprintln(os.Stderr, "missing required -data flag")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	opts := app.RunOptions{
		DataPath:        *dataPath,
		Province:        *province,
		PollutantColumn: *pollutant,
		OutputDir:       *outDir,
	}
	if *year != 0 {
		opts.Year = year
	}

	if err := app.New(cfg, logger).Run(context.Background(), opts); err != nil {
		logger.Error("analysis failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
