package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"PriceChart/internal/chart"
)

// Config holds all application configuration.
type Config struct {
	Symbol   string         `yaml:"symbol" env:"PRICECHART_SYMBOL"`
	Source   SourceConfig   `yaml:"source"`
	Chart    ChartConfig    `yaml:"chart"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Output   OutputConfig   `yaml:"output"`
	Log      LogConfig      `yaml:"log"`
}

// SourceConfig selects where the daily price table is read from.
type SourceConfig struct {
	Kind string `yaml:"kind" env:"PRICECHART_SOURCE"` // "csv" or "sqlite"
	Path string `yaml:"path" env:"PRICECHART_INPUT"`
}

// ChartConfig selects the series layout. Windows and Series override the preset.
type ChartConfig struct {
	Preset  string   `yaml:"preset" env:"PRICECHART_PRESET"`
	Windows []int    `yaml:"windows" env:"PRICECHART_WINDOWS" envSeparator:","`
	Series  []string `yaml:"series" env:"PRICECHART_SERIES" envSeparator:","`
	Title   string   `yaml:"title" env:"PRICECHART_TITLE"`
}

type ScheduleConfig struct {
	Cron string `yaml:"cron" env:"PRICECHART_CRON"`
}

type OutputConfig struct {
	Path string `yaml:"path" env:"PRICECHART_OUTPUT"`
}

type LogConfig struct {
	Level   string `yaml:"level" env:"LOG_LEVEL"`
	Console bool   `yaml:"console" env:"LOG_CONSOLE"`
}

const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

// Load reads config from a YAML file, then applies .env and environment
// variable overrides, then fills defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	_ = godotenv.Load()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Symbol == "" {
		c.Symbol = "BTC-USD"
	}
	if c.Source.Kind == "" {
		c.Source.Kind = SourceCSV
	}
	if c.Chart.Preset == "" {
		c.Chart.Preset = chart.DefaultPreset
	}
	if c.Schedule.Cron == "" {
		c.Schedule.Cron = "0 0 22 * * 1-5"
	}
	if c.Output.Path == "" {
		c.Output.Path = "data/chart.json"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Bundle resolves the preset and overrides into a pipeline configuration.
func (c *Config) Bundle() (chart.BundleConfig, error) {
	bc, err := chart.Preset(c.Chart.Preset)
	if err != nil {
		return chart.BundleConfig{}, err
	}
	if len(c.Chart.Windows) > 0 {
		bc.Windows = append([]int(nil), c.Chart.Windows...)
	}
	if len(c.Chart.Series) > 0 {
		kinds, err := chart.ParseSeriesKinds(c.Chart.Series)
		if err != nil {
			return chart.BundleConfig{}, err
		}
		bc.Series = kinds
	}
	return bc, nil
}

// Validate checks that all required fields are set and the chart layout is usable.
// A non-positive window is reported here so it fails at startup.
func (c *Config) Validate() error {
	if c.Symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	switch c.Source.Kind {
	case SourceCSV, SourceSQLite:
	default:
		return fmt.Errorf("source.kind must be %q or %q, got %q", SourceCSV, SourceSQLite, c.Source.Kind)
	}
	if c.Source.Path == "" {
		return fmt.Errorf("source.path is required")
	}
	bc, err := c.Bundle()
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	if err := bc.Validate(); err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	return nil
}
