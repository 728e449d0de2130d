package chart

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PriceChart/internal/model"
)

func day(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

// consecutiveTable builds one row per close starting at start.
func consecutiveTable(start string, closes ...float64) model.PriceTable {
	d := day(start)
	table := make(model.PriceTable, len(closes))
	for i, c := range closes {
		table[i] = model.PriceRow{
			Date:   d.AddDate(0, 0, i),
			Open:   c - 1,
			High:   c + 2,
			Low:    c - 2,
			Close:  c,
			Volume: int64(1000 * (i + 1)),
		}
	}
	return table
}

func TestBuildSeries(t *testing.T) {
	table := consecutiveTable("2024-01-01", 10, 20, 30)
	// weekend gap must not shift anything
	table[2].Date = day("2024-01-08")

	ohlc, volume, err := BuildSeries(table)
	require.NoError(t, err)
	require.Len(t, ohlc, 3)
	require.Len(t, volume, 3)

	for i, r := range table {
		ts := EncodeDate(r.Date)
		assert.Equal(t, model.OHLCPoint{Timestamp: ts, Open: r.Open, High: r.High, Low: r.Low, Close: r.Close}, ohlc[i])
		assert.Equal(t, model.VolumePoint{Timestamp: ts, Volume: r.Volume}, volume[i])
		if i > 0 {
			assert.Greater(t, ohlc[i].Timestamp, ohlc[i-1].Timestamp)
		}
	}
}

func TestBuildSeries_EmptyTable(t *testing.T) {
	ohlc, volume, err := BuildSeries(nil)
	var empty *EmptyTableError
	assert.True(t, errors.As(err, &empty))
	assert.Nil(t, ohlc)
	assert.Nil(t, volume)

	_, err = BuildCloseSeries(model.PriceTable{})
	assert.True(t, errors.As(err, &empty))
}

func TestMovingAverage(t *testing.T) {
	table := consecutiveTable("2024-01-01", 10, 20, 30, 40, 50)

	testCases := []struct {
		name   string
		window int
		want   []model.ValuePoint
	}{
		{
			name:   "window 3",
			window: 3,
			want: []model.ValuePoint{
				{Timestamp: EncodeDate(day("2024-01-03")), Value: 20},
				{Timestamp: EncodeDate(day("2024-01-04")), Value: 30},
				{Timestamp: EncodeDate(day("2024-01-05")), Value: 40},
			},
		},
		{
			name:   "window 1 starts at row 0",
			window: 1,
			want: []model.ValuePoint{
				{Timestamp: EncodeDate(day("2024-01-01")), Value: 10},
				{Timestamp: EncodeDate(day("2024-01-02")), Value: 20},
				{Timestamp: EncodeDate(day("2024-01-03")), Value: 30},
				{Timestamp: EncodeDate(day("2024-01-04")), Value: 40},
				{Timestamp: EncodeDate(day("2024-01-05")), Value: 50},
			},
		},
		{
			name:   "window equals length",
			window: 5,
			want:   []model.ValuePoint{{Timestamp: EncodeDate(day("2024-01-05")), Value: 30}},
		},
		{
			name:   "window longer than table",
			window: 6,
			want:   []model.ValuePoint{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := MovingAverage(table, tc.window)
			require.NoError(t, err)
			assert.Equal(t, tc.window, got.Window)
			assert.Equal(t, tc.want, got.Points)
		})
	}
}

func TestMovingAverage_Lengths(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100 + float64(i%7)
	}
	table := consecutiveTable("2023-06-01", closes...)
	for w := 1; w <= len(table); w++ {
		ma, err := MovingAverage(table, w)
		require.NoError(t, err)
		require.Len(t, ma.Points, len(table)-w+1, "window %d", w)
		assert.Equal(t, EncodeDate(table[w-1].Date), ma.Points[0].Timestamp, "window %d", w)
		for i := 1; i < len(ma.Points); i++ {
			assert.GreaterOrEqual(t, ma.Points[i].Timestamp, ma.Points[i-1].Timestamp)
		}
	}
}

func TestMovingAverage_InvalidWindow(t *testing.T) {
	table := consecutiveTable("2024-01-01", 1, 2, 3)
	for _, w := range []int{0, -1, -50} {
		_, err := MovingAverage(table, w)
		var invalid *InvalidWindowError
		require.True(t, errors.As(err, &invalid), "window %d", w)
		assert.Equal(t, w, invalid.Window)
	}
}

func TestBuildBundle(t *testing.T) {
	table := consecutiveTable("2024-01-01", 10, 20, 30, 40, 50)
	cfg := BundleConfig{Windows: []int{3, 10}, Series: []SeriesKind{SeriesOHLC, SeriesVolume, SeriesSMA}}

	bundle, err := BuildBundle("BTC-USD", table, cfg)
	require.NoError(t, err)
	assert.Equal(t, "BTC-USD", bundle.Symbol)
	require.Len(t, bundle.Averages, 2)
	assert.Len(t, bundle.Averages[0].Points, 3)
	assert.Empty(t, bundle.Averages[1].Points)
	assert.Nil(t, bundle.Close)

	// re-deriving from the same table must give identical series
	ohlc, volume, err := BuildSeries(table)
	require.NoError(t, err)
	assert.Equal(t, ohlc, bundle.OHLC)
	assert.Equal(t, volume, bundle.Volume)

	// the bundle does not alias the caller's table
	table[0].Close = 999
	assert.Equal(t, float64(10), bundle.OHLC[0].Close)

	ma3, ok := bundle.Average(3)
	require.True(t, ok)
	last, ok := ma3.Last()
	require.True(t, ok)
	assert.Equal(t, float64(40), last.Value)
}

func TestBuildBundle_Errors(t *testing.T) {
	table := consecutiveTable("2024-01-01", 10, 20)

	testCases := []struct {
		name     string
		table    model.PriceTable
		cfg      BundleConfig
		assertFn func(t *testing.T, err error)
	}{
		{
			name:  "empty table",
			table: nil,
			cfg:   BundleConfig{Windows: []int{2}},
			assertFn: func(t *testing.T, err error) {
				var target *EmptyTableError
				assert.True(t, errors.As(err, &target))
			},
		},
		{
			name:  "invalid window",
			table: table,
			cfg:   BundleConfig{Windows: []int{2, 0}},
			assertFn: func(t *testing.T, err error) {
				var target *InvalidWindowError
				assert.True(t, errors.As(err, &target))
			},
		},
		{
			name:  "unknown series",
			table: table,
			cfg:   BundleConfig{Series: []SeriesKind{"heikin"}},
			assertFn: func(t *testing.T, err error) {
				var target *UnknownSeriesError
				assert.True(t, errors.As(err, &target))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bundle, err := BuildBundle("X", tc.table, tc.cfg)
			assert.Nil(t, bundle)
			tc.assertFn(t, err)
		})
	}
}

func TestBuildBundle_CloseSeries(t *testing.T) {
	table := consecutiveTable("2024-01-01", 1, 2, 3)
	bundle, err := BuildBundle("X", table, Presets["line"])
	require.NoError(t, err)
	require.Len(t, bundle.Close, 3)
	assert.Equal(t, float64(3), bundle.Close[2].Value)
	assert.Len(t, bundle.OHLC, 3)
}

func TestPreset(t *testing.T) {
	p, err := Preset("HighStock")
	require.NoError(t, err)
	assert.Equal(t, []int{50, 100}, p.Windows)

	p.Windows[0] = 7
	assert.Equal(t, 50, Presets["highstock"].Windows[0])

	_, err = Preset("nope")
	assert.Error(t, err)
}

func TestParseSeriesKinds(t *testing.T) {
	kinds, err := ParseSeriesKinds([]string{"OHLC", " volume", "", "sma"})
	require.NoError(t, err)
	assert.Equal(t, []SeriesKind{SeriesOHLC, SeriesVolume, SeriesSMA}, kinds)

	_, err = ParseSeriesKinds([]string{"ohlc", "renko"})
	var unknown *UnknownSeriesError
	assert.True(t, errors.As(err, &unknown))
}
