package report

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/stat"

	"PriceChart/internal/calculator"
	"PriceChart/internal/chart"
	"PriceChart/internal/model"
)

// tradingDaysPerYear is the lookback of the 52-week range.
const tradingDaysPerYear = 252

// Summary condenses a price history for the report header.
type Summary struct {
	Symbol      string
	Rows        int
	First       string
	Last        string
	LastClose   float64
	MeanClose   float64
	High        float64
	Low         float64
	High52w     float64
	Low52w      float64
	Position52w float64 // 0.0 ~ 1.0
	Averages    []AverageValue
}

// AverageValue is the latest SMA for one window; Ok is false when the history
// is shorter than the window.
type AverageValue struct {
	Window int
	Value  float64
	Ok     bool
}

// Summarize computes the summary of a non-empty table.
func Summarize(symbol string, table model.PriceTable, windows []int) (Summary, error) {
	if len(table) == 0 {
		return Summary{}, &chart.EmptyTableError{}
	}
	closes := table.Closes()
	last := table[len(table)-1]
	s := Summary{
		Symbol:    symbol,
		Rows:      len(table),
		First:     chart.FormatDate(table[0].Date),
		Last:      chart.FormatDate(last.Date),
		LastClose: last.Close,
		MeanClose: stat.Mean(closes, nil),
	}

	var err error
	if s.High, s.Low, err = calculator.PeriodRange(table, 0); err != nil {
		return Summary{}, err
	}
	if s.High52w, s.Low52w, err = calculator.PeriodRange(table, tradingDaysPerYear); err != nil {
		return Summary{}, err
	}
	if s.Position52w, err = calculator.RangePosition(last.Close, s.High52w, s.Low52w); err != nil {
		return Summary{}, err
	}

	for _, w := range windows {
		v, err := calculator.LatestSMA(table, w)
		switch {
		case err == nil:
			s.Averages = append(s.Averages, AverageValue{Window: w, Value: v, Ok: true})
		case errors.Is(err, calculator.ErrNotEnoughData):
			s.Averages = append(s.Averages, AverageValue{Window: w})
		case errors.Is(err, calculator.ErrInvalidPeriod):
			return Summary{}, &chart.InvalidWindowError{Window: w}
		default:
			return Summary{}, err
		}
	}
	return s, nil
}

// FormatSummary renders a summary as plain text.
func FormatSummary(s Summary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s | %s ~ %s (%d rows)\n", s.Symbol, s.First, s.Last, s.Rows))
	b.WriteString(fmt.Sprintf("Last close: %s | Mean close: %s\n", price(s.LastClose), price(s.MeanClose)))
	b.WriteString(fmt.Sprintf("Range: %s ~ %s\n", price(s.Low), price(s.High)))
	b.WriteString(fmt.Sprintf("52w: %s ~ %s (position %.0f%%)\n", price(s.Low52w), price(s.High52w), s.Position52w*100))
	for _, a := range s.Averages {
		if !a.Ok {
			b.WriteString(fmt.Sprintf("SMA%d: n/a\n", a.Window))
			continue
		}
		b.WriteString(fmt.Sprintf("SMA%d: %s\n", a.Window, price(a.Value)))
	}
	return b.String()
}
