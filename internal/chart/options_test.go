package chart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOptions_Highstock(t *testing.T) {
	table := consecutiveTable("2024-01-01", 10, 20, 30, 40, 50)
	sel := BundleConfig{Windows: []int{2, 3}, Series: []SeriesKind{SeriesOHLC, SeriesVolume, SeriesSMA}}
	bundle, err := BuildBundle("BTC-USD", table, sel)
	require.NoError(t, err)

	opts := BuildOptions(bundle, sel, DefaultOptionsConfig)
	assert.Equal(t, "BTC-USD Price Chart", opts.Title.Text)
	assert.Equal(t, 4, opts.RangeSelector.Selected)
	require.Len(t, opts.Series, 4)
	assert.Equal(t, "candlestick", opts.Series[0].Type)
	assert.Equal(t, "Volume", opts.Series[1].Name)
	assert.Equal(t, 1, opts.Series[1].YAxis)
	assert.Equal(t, "SMA2", opts.Series[2].Name)
	assert.Equal(t, "SMA3", opts.Series[3].Name)

	raw, err := json.Marshal(opts)
	require.NoError(t, err)

	var decoded struct {
		RangeSelector struct {
			InputEnabled bool `json:"inputEnabled"`
		} `json:"rangeSelector"`
		PlotOptions struct {
			Series struct {
				DataGrouping struct {
					Units [][]any `json:"units"`
				} `json:"dataGrouping"`
			} `json:"series"`
		} `json:"plotOptions"`
		Series []struct {
			Name    string          `json:"name"`
			YAxis   *int            `json:"yAxis"`
			Tooltip *SeriesTooltip  `json:"tooltip"`
			Data    json.RawMessage `json:"data"`
		} `json:"series"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.False(t, decoded.RangeSelector.InputEnabled)
	require.Len(t, decoded.PlotOptions.Series.DataGrouping.Units, 2)
	assert.Equal(t, "week", decoded.PlotOptions.Series.DataGrouping.Units[0][0])

	assert.Nil(t, decoded.Series[0].YAxis)
	assert.JSONEq(t,
		`[[1704067200000,9,12,8,10],[1704153600000,19,22,18,20],[1704240000000,29,32,28,30],[1704326400000,39,42,38,40],[1704412800000,49,52,48,50]]`,
		string(decoded.Series[0].Data))
	require.NotNil(t, decoded.Series[1].Tooltip)
	assert.Equal(t, 0, decoded.Series[1].Tooltip.ValueDecimals)
	assert.JSONEq(t, `[[1704240000000,20],[1704326400000,30],[1704412800000,40]]`, string(decoded.Series[3].Data))
}

func TestBuildOptions_LinePreset(t *testing.T) {
	table := consecutiveTable("2024-01-01", 1, 2)
	sel := Presets["line"]
	bundle, err := BuildBundle("ETH-USD", table, sel)
	require.NoError(t, err)

	opts := BuildOptions(bundle, sel, OptionsConfig{Title: "ETH 90 days", Selected: 99})
	assert.Equal(t, "ETH 90 days", opts.Title.Text)
	assert.Equal(t, 5, opts.RangeSelector.Selected)
	require.Len(t, opts.Series, 1)
	assert.Equal(t, "Close", opts.Series[0].Name)
	assert.Equal(t, "line", opts.Series[0].Type)
}
