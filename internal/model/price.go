package model

import "time"

// PriceRow is one trading day of a daily price history.
type PriceRow struct {
	Date   time.Time `validate:"required"`
	Open   float64   `validate:"gt=0,gtefield=Low,ltefield=High"`
	High   float64   `validate:"gt=0"`
	Low    float64   `validate:"gt=0,ltefield=High"`
	Close  float64   `validate:"gt=0,gtefield=Low,ltefield=High"`
	Volume int64     `validate:"gte=0"`
}

// PriceTable is a daily price history ordered ascending by date.
// Gaps for non-trading days are expected.
type PriceTable []PriceRow

// Closes returns the close column in table order.
func (t PriceTable) Closes() []float64 {
	closes := make([]float64, len(t))
	for i, r := range t {
		closes[i] = r.Close
	}
	return closes
}

// Clone returns a copy that shares no memory with t.
func (t PriceTable) Clone() PriceTable {
	if t == nil {
		return nil
	}
	out := make(PriceTable, len(t))
	copy(out, t)
	return out
}
