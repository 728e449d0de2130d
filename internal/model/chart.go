package model

import "encoding/json"

// OHLCPoint is one candlestick point keyed by epoch milliseconds.
type OHLCPoint struct {
	Timestamp int64
	Open      float64
	High      float64
	Low       float64
	Close     float64
}

// MarshalJSON encodes the point as [ts, open, high, low, close].
func (p OHLCPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([5]any{p.Timestamp, p.Open, p.High, p.Low, p.Close})
}

// VolumePoint is one traded-volume point keyed by epoch milliseconds.
type VolumePoint struct {
	Timestamp int64
	Volume    int64
}

// MarshalJSON encodes the point as [ts, volume].
func (p VolumePoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int64{p.Timestamp, p.Volume})
}

// ValuePoint is a single-valued point (close line, moving average).
type ValuePoint struct {
	Timestamp int64
	Value     float64
}

// MarshalJSON encodes the point as [ts, value].
func (p ValuePoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.Timestamp, p.Value})
}

// MovingAverageSeries holds the simple moving average for one window length.
// Point i is stamped with the date of row Window-1+i.
type MovingAverageSeries struct {
	Window int
	Points []ValuePoint
}

// Last returns the most recent average, if any.
func (s MovingAverageSeries) Last() (ValuePoint, bool) {
	if len(s.Points) == 0 {
		return ValuePoint{}, false
	}
	return s.Points[len(s.Points)-1], true
}

// ChartBundle is everything a charting surface needs for one price table.
// A bundle is never updated in place; rebuilding replaces it.
type ChartBundle struct {
	Symbol   string
	OHLC     []OHLCPoint
	Volume   []VolumePoint
	Close    []ValuePoint
	Averages []MovingAverageSeries
}

// Average returns the series computed for window, if configured.
func (b *ChartBundle) Average(window int) (MovingAverageSeries, bool) {
	for _, a := range b.Averages {
		if a.Window == window {
			return a, true
		}
	}
	return MovingAverageSeries{}, false
}
