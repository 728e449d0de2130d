package collector

import (
	"context"
	"time"

	"PriceChart/internal/model"
)

// StaticSource returns a fixed table, for development and testing.
type StaticSource struct {
	Table model.PriceTable
	Err   error
}

func (s *StaticSource) Name() string { return "static" }

func (s *StaticSource) Load(_ context.Context, _ string) (model.PriceTable, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Table.Clone(), nil
}

// GenerateTable builds count consecutive daily rows ending the day before end,
// drifting around basePrice.
func GenerateTable(basePrice float64, count int, end time.Time) model.PriceTable {
	y, m, d := end.Date()
	last := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	rows := make(model.PriceTable, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		rows[i] = model.PriceRow{
			Date:   last.AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return rows
}
