package calculator

import (
	"errors"
	"math"

	"PriceChart/internal/model"
)

// ErrNoRows is returned when a range is requested over an empty table.
var ErrNoRows = errors.New("no price rows provided")

// PeriodRange scans the most recent lookback rows and returns the high and low.
// A non-positive lookback scans the whole table.
func PeriodRange(table model.PriceTable, lookback int) (high, low float64, err error) {
	if len(table) == 0 {
		return 0, 0, ErrNoRows
	}
	n := len(table)
	start := 0
	if lookback > 0 && n > lookback {
		start = n - lookback
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for i := start; i < n; i++ {
		if table[i].High > high {
			high = table[i].High
		}
		if table[i].Low < low {
			low = table[i].Low
		}
	}
	return high, low, nil
}

// RangePosition returns where price sits within [low, high] (0.0~1.0).
func RangePosition(price, high, low float64) (float64, error) {
	if high == low {
		return 0.5, nil
	}
	if high < low {
		return 0, errors.New("high must be >= low")
	}
	pos := (price - low) / (high - low)
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	return pos, nil
}
