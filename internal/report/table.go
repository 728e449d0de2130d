package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"PriceChart/internal/chart"
	"PriceChart/internal/model"
)

// TableHeader is the column order of the price table view.
var TableHeader = []string{"Date", "High", "Low", "Open", "Close", "Volume"}

// TableRows formats the price history newest first, prices at two decimals.
func TableRows(table model.PriceTable) [][]string {
	rows := make([][]string, 0, len(table))
	for i := len(table) - 1; i >= 0; i-- {
		r := table[i]
		rows = append(rows, []string{
			chart.FormatDate(r.Date),
			price(r.High),
			price(r.Low),
			price(r.Open),
			price(r.Close),
			strconv.FormatInt(r.Volume, 10),
		})
	}
	return rows
}

// WriteTable renders the price history as a text table, newest first.
func WriteTable(w io.Writer, table model.PriceTable) error {
	tw := tablewriter.NewWriter(w)
	header := make([]any, len(TableHeader))
	for i, h := range TableHeader {
		header[i] = h
	}
	tw.Header(header...)
	for _, row := range TableRows(table) {
		if err := tw.Append(row); err != nil {
			return fmt.Errorf("append row %s: %w", row[0], err)
		}
	}
	if err := tw.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}

func price(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
