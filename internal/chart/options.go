package chart

import (
	"encoding/json"
	"fmt"

	"PriceChart/internal/model"
)

// Options is the chart configuration handed to the rendering layer. Its JSON
// form follows the Highcharts Stock options layout.
type Options struct {
	Title         Text          `json:"title"`
	RangeSelector RangeSelector `json:"rangeSelector"`
	YAxis         []Axis        `json:"yAxis"`
	Tooltip       Tooltip       `json:"tooltip"`
	PlotOptions   PlotOptions   `json:"plotOptions"`
	Series        []Series      `json:"series"`
}

type Text struct {
	Text string `json:"text"`
}

type RangeButton struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
	Text  string `json:"text"`
}

type RangeSelector struct {
	Buttons      []RangeButton `json:"buttons"`
	Selected     int           `json:"selected"`
	InputEnabled bool          `json:"inputEnabled"`
}

type AxisLabels struct {
	Align string `json:"align"`
	X     int    `json:"x"`
}

type Axis struct {
	Labels    AxisLabels `json:"labels"`
	Title     Text       `json:"title"`
	Top       string     `json:"top,omitempty"`
	Height    string     `json:"height"`
	Offset    *int       `json:"offset,omitempty"`
	LineWidth int        `json:"lineWidth"`
	Resize    *Toggle    `json:"resize,omitempty"`
}

type Toggle struct {
	Enabled bool `json:"enabled"`
}

type Tooltip struct {
	Split bool `json:"split"`
}

type SeriesTooltip struct {
	ValueDecimals int `json:"valueDecimals"`
}

// GroupingUnit is a [unit, allowed multiples] pair, e.g. ["month", [1, 2, 3]].
type GroupingUnit struct {
	Unit      string
	Multiples []int
}

// MarshalJSON encodes the unit as a two-element array.
func (g GroupingUnit) MarshalJSON() ([]byte, error) {
	return marshalPair(g.Unit, g.Multiples)
}

type DataGrouping struct {
	Units []GroupingUnit `json:"units"`
}

type SeriesDefaults struct {
	DataGrouping DataGrouping  `json:"dataGrouping"`
	Tooltip      SeriesTooltip `json:"tooltip"`
}

type PlotOptions struct {
	Series SeriesDefaults `json:"series"`
}

// Series is one plotted series. Data holds one of the model point slices.
type Series struct {
	Name    string         `json:"name"`
	Type    string         `json:"type"`
	YAxis   int            `json:"yAxis,omitempty"`
	Tooltip *SeriesTooltip `json:"tooltip,omitempty"`
	Data    any            `json:"data"`
}

// OptionsConfig controls the presentation parts of Options.
type OptionsConfig struct {
	Title string
	// Selected is the index of the initially active range button.
	Selected int
}

// DefaultOptionsConfig selects the one-year range.
var DefaultOptionsConfig = OptionsConfig{Selected: 4}

var defaultRangeButtons = []RangeButton{
	{Type: "month", Count: 1, Text: "1M"},
	{Type: "month", Count: 2, Text: "2M"},
	{Type: "month", Count: 3, Text: "3M"},
	{Type: "month", Count: 6, Text: "6M"},
	{Type: "year", Count: 1, Text: "1Y"},
	{Type: "all", Count: 1, Text: "All"},
}

var defaultGroupingUnits = []GroupingUnit{
	{Unit: "week", Multiples: []int{1}},
	{Unit: "month", Multiples: []int{1, 2, 3, 4, 6}},
}

// BuildOptions lays out a bundle as chart options, emitting only the series
// selected in sel.
func BuildOptions(b *model.ChartBundle, sel BundleConfig, cfg OptionsConfig) Options {
	title := cfg.Title
	if title == "" {
		title = fmt.Sprintf("%s Price Chart", b.Symbol)
	}
	selected := cfg.Selected
	if selected < 0 || selected >= len(defaultRangeButtons) {
		selected = len(defaultRangeButtons) - 1
	}
	zero := 0

	opts := Options{
		Title: Text{Text: title},
		RangeSelector: RangeSelector{
			Buttons:  append([]RangeButton(nil), defaultRangeButtons...),
			Selected: selected,
		},
		YAxis: []Axis{
			{
				Labels:    AxisLabels{Align: "right", X: -3},
				Title:     Text{Text: "Price"},
				Height:    "65%",
				LineWidth: 2,
				Resize:    &Toggle{Enabled: true},
			},
			{
				Labels:    AxisLabels{Align: "right", X: -3},
				Title:     Text{Text: "Volume"},
				Top:       "70%",
				Height:    "30%",
				Offset:    &zero,
				LineWidth: 2,
			},
		},
		Tooltip: Tooltip{Split: true},
		Series:  []Series{},
		PlotOptions: PlotOptions{Series: SeriesDefaults{
			DataGrouping: DataGrouping{Units: append([]GroupingUnit(nil), defaultGroupingUnits...)},
			Tooltip:      SeriesTooltip{ValueDecimals: 2},
		}},
	}

	if sel.Has(SeriesOHLC) {
		opts.Series = append(opts.Series, Series{Name: "Price", Type: "candlestick", Data: b.OHLC})
	}
	if sel.Has(SeriesClose) {
		opts.Series = append(opts.Series, Series{Name: "Close", Type: "line", Data: b.Close})
	}
	if sel.Has(SeriesVolume) {
		opts.Series = append(opts.Series, Series{
			Name:    "Volume",
			Type:    "column",
			YAxis:   1,
			Tooltip: &SeriesTooltip{ValueDecimals: 0},
			Data:    b.Volume,
		})
	}
	if sel.Has(SeriesSMA) {
		for _, a := range b.Averages {
			opts.Series = append(opts.Series, Series{
				Name: fmt.Sprintf("SMA%d", a.Window),
				Type: "line",
				Data: a.Points,
			})
		}
	}
	return opts
}

func marshalPair(a, b any) ([]byte, error) {
	return json.Marshal([2]any{a, b})
}
