package chart

import (
	"fmt"
	"strings"

	"PriceChart/internal/model"
)

// SeriesKind names one series a chart can show.
type SeriesKind string

const (
	SeriesOHLC   SeriesKind = "ohlc"
	SeriesVolume SeriesKind = "volume"
	SeriesClose  SeriesKind = "close"
	SeriesSMA    SeriesKind = "sma"
)

var knownSeries = map[SeriesKind]bool{
	SeriesOHLC:   true,
	SeriesVolume: true,
	SeriesClose:  true,
	SeriesSMA:    true,
}

// BundleConfig selects the moving-average windows and the series to emit.
type BundleConfig struct {
	Windows []int
	Series  []SeriesKind
}

// Presets mirror the three chart layouts the tool ships with.
var Presets = map[string]BundleConfig{
	"highstock": {Windows: []int{50, 100}, Series: []SeriesKind{SeriesOHLC, SeriesVolume, SeriesSMA}},
	"candles":   {Series: []SeriesKind{SeriesOHLC, SeriesVolume}},
	"line":      {Series: []SeriesKind{SeriesClose}},
}

// DefaultPreset is used when no preset is configured.
const DefaultPreset = "highstock"

// Preset returns a copy of the named preset.
func Preset(name string) (BundleConfig, error) {
	p, ok := Presets[strings.ToLower(name)]
	if !ok {
		return BundleConfig{}, fmt.Errorf("unknown chart preset %q", name)
	}
	return BundleConfig{
		Windows: append([]int(nil), p.Windows...),
		Series:  append([]SeriesKind(nil), p.Series...),
	}, nil
}

// ParseSeriesKinds converts names such as "ohlc,volume" into series kinds.
func ParseSeriesKinds(names []string) ([]SeriesKind, error) {
	kinds := make([]SeriesKind, 0, len(names))
	for _, n := range names {
		k := SeriesKind(strings.ToLower(strings.TrimSpace(n)))
		if k == "" {
			continue
		}
		if !knownSeries[k] {
			return nil, &UnknownSeriesError{Kind: n}
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Validate checks windows and series kinds.
func (c BundleConfig) Validate() error {
	for _, w := range c.Windows {
		if w <= 0 {
			return &InvalidWindowError{Window: w}
		}
	}
	for _, k := range c.Series {
		if !knownSeries[k] {
			return &UnknownSeriesError{Kind: string(k)}
		}
	}
	return nil
}

// Has reports whether kind is selected.
func (c BundleConfig) Has(kind SeriesKind) bool {
	for _, k := range c.Series {
		if k == kind {
			return true
		}
	}
	return false
}

// BuildBundle runs the whole pipeline over table. It returns either a
// complete bundle or the first error; never a partial bundle.
func BuildBundle(symbol string, table model.PriceTable, cfg BundleConfig) (*model.ChartBundle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ohlc, volume, err := BuildSeries(table)
	if err != nil {
		return nil, err
	}

	bundle := &model.ChartBundle{
		Symbol: symbol,
		OHLC:   ohlc,
		Volume: volume,
	}

	if cfg.Has(SeriesClose) {
		closes, err := BuildCloseSeries(table)
		if err != nil {
			return nil, err
		}
		bundle.Close = closes
	}

	bundle.Averages = make([]model.MovingAverageSeries, 0, len(cfg.Windows))
	for _, w := range cfg.Windows {
		ma, err := MovingAverage(table, w)
		if err != nil {
			return nil, fmt.Errorf("sma window %d: %w", w, err)
		}
		bundle.Averages = append(bundle.Averages, ma)
	}
	return bundle, nil
}
