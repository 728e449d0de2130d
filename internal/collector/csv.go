package collector

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"PriceChart/internal/chart"
	"PriceChart/internal/model"
)

// CSVSource reads a Yahoo-style daily history export
// (Date,Open,High,Low,Close,Adj Close,Volume). Column order is taken from the
// header; unknown columns are ignored.
type CSVSource struct {
	Path string
	// Open is used instead of os.Open when set.
	Open func(path string) (io.ReadCloser, error)
}

// NewCSVSource creates a CSVSource reading path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

func (s *CSVSource) Name() string { return "csv" }

var requiredColumns = []string{"date", "open", "high", "low", "close", "volume"}

func (s *CSVSource) Load(ctx context.Context, _ string) (model.PriceTable, error) {
	open := s.Open
	if open == nil {
		open = func(p string) (io.ReadCloser, error) { return os.Open(p) }
	}
	f, err := open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	return ReadCSV(ctx, f)
}

// ReadCSV parses a daily history from r.
func ReadCSV(ctx context.Context, r io.Reader) (model.PriceTable, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return model.PriceTable{}, nil
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("csv: missing column %q", c)
		}
	}

	var rows model.PriceTable
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}
		row, ok, err := parseRecord(rec, cols)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		if !ok {
			continue // null bar (holiday, halted session)
		}
		rows = append(rows, row)
	}
	if rows == nil {
		rows = model.PriceTable{}
	}
	return rows, nil
}

func parseRecord(rec []string, cols map[string]int) (model.PriceRow, bool, error) {
	field := func(name string) string {
		i := cols[name]
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	date, err := chart.ParseDate(field("date"))
	if err != nil {
		return model.PriceRow{}, false, err
	}

	var prices [4]float64
	for i, name := range []string{"open", "high", "low", "close"} {
		v := field(name)
		if isNull(v) {
			return model.PriceRow{}, false, nil
		}
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return model.PriceRow{}, false, fmt.Errorf("parse %s %q: %w", name, v, err)
		}
		prices[i] = p
	}

	v := field("volume")
	if isNull(v) {
		return model.PriceRow{}, false, nil
	}
	volume, err := parseVolume(v)
	if err != nil {
		return model.PriceRow{}, false, err
	}

	return model.PriceRow{
		Date:   date,
		Open:   prices[0],
		High:   prices[1],
		Low:    prices[2],
		Close:  prices[3],
		Volume: volume,
	}, true, nil
}

func isNull(v string) bool {
	return v == "" || strings.EqualFold(v, "null") || strings.EqualFold(v, "nan")
}

// parseVolume accepts integers and integral floats such as "1200.0".
func parseVolume(v string) (int64, error) {
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("parse volume %q: not an integer", v)
	}
	return int64(f), nil
}
