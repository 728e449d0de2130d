package collector

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"PriceChart/internal/chart"
	"PriceChart/internal/model"
)

// DuplicateDateError reports two rows for the same trading day.
type DuplicateDateError struct {
	Date time.Time
}

func (e *DuplicateDateError) Error() string {
	return fmt.Sprintf("duplicate row for %s", chart.FormatDate(e.Date))
}

// Collector loads a price table and turns it into a chart bundle.
type Collector struct {
	Source Source
	Symbol string
	Bundle chart.BundleConfig
	Logger *zap.Logger

	validate *validator.Validate
}

// NewCollector creates a new Collector.
func NewCollector(source Source, symbol string, bundle chart.BundleConfig, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{
		Source:   source,
		Symbol:   symbol,
		Bundle:   bundle,
		Logger:   logger,
		validate: validator.New(),
	}
}

// Collect loads the price table and runs the chart pipeline over it.
// The returned table is the ordered, validated input the bundle was built from.
func (c *Collector) Collect(ctx context.Context) (*model.ChartBundle, model.PriceTable, error) {
	table, err := c.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	bundle, err := chart.BuildBundle(c.Symbol, table, c.Bundle)
	if err != nil {
		return nil, table, fmt.Errorf("build bundle: %w", err)
	}
	c.Logger.Debug("chart bundle built",
		zap.String("symbol", c.Symbol),
		zap.Int("points", len(bundle.OHLC)),
		zap.Int("averages", len(bundle.Averages)))
	return bundle, table, nil
}

// Load fetches the table from the source, orders it ascending by date and
// checks every row.
func (c *Collector) Load(ctx context.Context) (model.PriceTable, error) {
	table, err := c.Source.Load(ctx, c.Symbol)
	if err != nil {
		return nil, fmt.Errorf("load %s from %s: %w", c.Symbol, c.Source.Name(), err)
	}
	if err := c.prepare(table); err != nil {
		return nil, fmt.Errorf("%s table: %w", c.Source.Name(), err)
	}
	c.Logger.Info("price table loaded",
		zap.String("source", c.Source.Name()),
		zap.String("symbol", c.Symbol),
		zap.Int("rows", len(table)))
	return table, nil
}

func (c *Collector) prepare(table model.PriceTable) error {
	sort.SliceStable(table, func(i, j int) bool { return table[i].Date.Before(table[j].Date) })
	for i := range table {
		if i > 0 && table[i].Date.Equal(table[i-1].Date) {
			return &DuplicateDateError{Date: table[i].Date}
		}
		if err := c.validator().Struct(table[i]); err != nil {
			return fmt.Errorf("row %s: %w", chart.FormatDate(table[i].Date), err)
		}
	}
	return nil
}

func (c *Collector) validator() *validator.Validate {
	if c.validate == nil {
		c.validate = validator.New()
	}
	return c.validate
}
