package chart

import (
	"fmt"

	"PriceChart/internal/calculator"
	"PriceChart/internal/model"
)

// MovingAverage computes the simple moving average of closes over window rows.
// The first window-1 rows produce no point; each point carries the timestamp
// of the last row in its window. A window longer than the table yields an
// empty series.
func MovingAverage(table model.PriceTable, window int) (model.MovingAverageSeries, error) {
	if window <= 0 {
		return model.MovingAverageSeries{}, &InvalidWindowError{Window: window}
	}
	means, err := calculator.RollingSMA(table.Closes(), window)
	if err != nil {
		return model.MovingAverageSeries{}, fmt.Errorf("rolling sma %d: %w", window, err)
	}
	points := make([]model.ValuePoint, len(means))
	for i, m := range means {
		points[i] = model.ValuePoint{
			Timestamp: EncodeDate(table[window-1+i].Date),
			Value:     m,
		}
	}
	return model.MovingAverageSeries{Window: window, Points: points}, nil
}
