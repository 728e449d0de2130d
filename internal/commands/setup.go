package commands

import (
	"fmt"

	"go.uber.org/zap"

	"PriceChart/internal/chart"
	"PriceChart/internal/collector"
	"PriceChart/internal/config"
	"PriceChart/internal/logger"
)

// app is what every command needs after startup.
type app struct {
	cfg       *config.Config
	bundle    chart.BundleConfig
	log       *zap.Logger
	collector *collector.Collector
	closeFn   func() error
}

func (a *app) Close() {
	if a.closeFn != nil {
		if err := a.closeFn(); err != nil {
			a.log.Warn("close source", zap.Error(err))
		}
	}
	_ = a.log.Sync()
}

// setup loads and validates configuration, then wires the collector.
// Configuration errors, including bad windows, stop the command here.
func setup() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	bc, err := cfg.Bundle()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Options{Level: logger.Level(cfg.Log.Level), Console: cfg.Log.Console})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	a := &app{cfg: cfg, bundle: bc, log: log}

	var src collector.Source
	switch cfg.Source.Kind {
	case config.SourceSQLite:
		s, err := collector.NewSQLiteSource(cfg.Source.Path, log)
		if err != nil {
			return nil, err
		}
		src = s
		a.closeFn = s.Close
	default:
		src = collector.NewCSVSource(cfg.Source.Path)
	}
	log.Info("source configured",
		zap.String("source", src.Name()),
		zap.String("symbol", cfg.Symbol),
		zap.Ints("windows", bc.Windows))

	a.collector = collector.NewCollector(src, cfg.Symbol, bc, log)
	return a, nil
}

func applyOverrides(cfg *config.Config) {
	if flags.symbol != "" {
		cfg.Symbol = flags.symbol
	}
	if flags.source != "" {
		cfg.Source.Kind = flags.source
	}
	if flags.input != "" {
		cfg.Source.Path = flags.input
	}
	if flags.preset != "" {
		cfg.Chart.Preset = flags.preset
	}
	if len(flags.windows) > 0 {
		cfg.Chart.Windows = flags.windows
	}
	if len(flags.series) > 0 {
		cfg.Chart.Series = flags.series
	}
	if flags.title != "" {
		cfg.Chart.Title = flags.title
	}
	if flags.out != "" {
		cfg.Output.Path = flags.out
	}
}

func (a *app) optionsConfig() chart.OptionsConfig {
	oc := chart.DefaultOptionsConfig
	oc.Title = a.cfg.Chart.Title
	return oc
}
