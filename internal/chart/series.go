package chart

import "PriceChart/internal/model"

// BuildSeries zips each row's timestamp with its prices and volume.
// Both series have one point per row, in table order.
func BuildSeries(table model.PriceTable) ([]model.OHLCPoint, []model.VolumePoint, error) {
	if len(table) == 0 {
		return nil, nil, &EmptyTableError{}
	}
	ohlc := make([]model.OHLCPoint, len(table))
	volume := make([]model.VolumePoint, len(table))
	for i, r := range table {
		ts := EncodeDate(r.Date)
		ohlc[i] = model.OHLCPoint{
			Timestamp: ts,
			Open:      r.Open,
			High:      r.High,
			Low:       r.Low,
			Close:     r.Close,
		}
		volume[i] = model.VolumePoint{Timestamp: ts, Volume: r.Volume}
	}
	return ohlc, volume, nil
}

// BuildCloseSeries returns the close price of every row as a line series.
func BuildCloseSeries(table model.PriceTable) ([]model.ValuePoint, error) {
	if len(table) == 0 {
		return nil, &EmptyTableError{}
	}
	out := make([]model.ValuePoint, len(table))
	for i, r := range table {
		out[i] = model.ValuePoint{Timestamp: EncodeDate(r.Date), Value: r.Close}
	}
	return out, nil
}
