package collector

import (
	"context"

	"PriceChart/internal/model"
)

// Source loads the daily price history of a symbol.
// Rows may come back in any order; the Collector sorts them.
type Source interface {
	Load(ctx context.Context, symbol string) (model.PriceTable, error)
	Name() string
}
