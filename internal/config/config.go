package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
	Output   OutputConfig   `yaml:"output" envconfig:"OUTPUT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/analyzer.log"`
}

// AnalysisConfig contains the knobs of the statistical pipeline
type AnalysisConfig struct {
	PollutantColumn  string  `yaml:"pollutant_column" envconfig:"POLLUTANT_COLUMN" default:"Total_Release" validate:"required"`
	TopN             int     `yaml:"top_n" envconfig:"TOP_N" default:"10" validate:"min=1"`
	OutlierMethod    string  `yaml:"outlier_method" envconfig:"OUTLIER_METHOD" default:"iqr" validate:"oneof=iqr zscore"`
	OutlierThreshold float64 `yaml:"outlier_threshold" envconfig:"OUTLIER_THRESHOLD" default:"1.5" validate:"gt=0"`
	HistogramBins    int     `yaml:"histogram_bins" envconfig:"HISTOGRAM_BINS" default:"20" validate:"min=2"`
	LogScale         bool    `yaml:"log_scale" envconfig:"LOG_SCALE" default:"false"`
}

// OutputConfig contains artifact output configuration
type OutputConfig struct {
	Dir string `yaml:"dir" envconfig:"DIR" default:"output" validate:"required"`
}

// Load loads configuration from environment variables and, when filePath is
// non-empty, a YAML config file. File values take precedence over environment
// values, matching how operators pin per-run settings.
func Load(filePath string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("NPRI", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if filePath != "" {
		if err := loadFromFile(filePath, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile overlays configuration from a YAML file
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks the configuration against its struct-level constraints.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	return nil
}

// Default returns the configuration produced by processing an empty
// environment, useful as a fallback when Load fails.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/analyzer.log",
		},
		Analysis: AnalysisConfig{
			PollutantColumn:  "Total_Release",
			TopN:             10,
			OutlierMethod:    "iqr",
			OutlierThreshold: 1.5,
			HistogramBins:    20,
		},
		Output: OutputConfig{
			Dir: "output",
		},
	}
}
