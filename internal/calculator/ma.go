package calculator

import (
	"errors"

	"PriceChart/internal/model"
)

var (
	// ErrInvalidPeriod is returned for a non-positive averaging period.
	ErrInvalidPeriod = errors.New("period must be positive")
	// ErrNotEnoughData is returned when fewer values than the period are available.
	ErrNotEnoughData = errors.New("not enough data for SMA calculation")
)

// CalculateSMA computes the simple moving average of the last period prices.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, ErrInvalidPeriod
	}
	if len(prices) < period {
		return 0, ErrNotEnoughData
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// RollingSMA computes the trailing simple moving average for every full window.
// Output i is the mean of values[i:i+period], so the result has
// len(values)-period+1 entries and is empty when period exceeds len(values).
func RollingSMA(values []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, ErrInvalidPeriod
	}
	if len(values) < period {
		return []float64{}, nil
	}
	out := make([]float64, 0, len(values)-period+1)
	for i := 0; i+period <= len(values); i++ {
		// each window is summed on its own so out[i] == mean(values[i:i+period])
		sum := 0.0
		for _, v := range values[i : i+period] {
			sum += v
		}
		out = append(out, sum/float64(period))
	}
	return out, nil
}

// LatestSMA returns the most recent period-row close average of a table.
func LatestSMA(table model.PriceTable, period int) (float64, error) {
	return CalculateSMA(table.Closes(), period)
}
