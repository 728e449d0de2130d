package collector

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"PriceChart/internal/chart"
	"PriceChart/internal/model"
)

// Schema is the table layout SQLiteSource reads from.
const Schema = `CREATE TABLE IF NOT EXISTS daily_prices (
	symbol TEXT    NOT NULL,
	date   TEXT    NOT NULL,
	open   REAL    NOT NULL,
	high   REAL    NOT NULL,
	low    REAL    NOT NULL,
	close  REAL    NOT NULL,
	volume INTEGER NOT NULL,
	PRIMARY KEY (symbol, date)
)`

// SQLiteSource reads daily prices from a local SQLite database.
type SQLiteSource struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteSource opens the SQLite database at dbPath.
func NewSQLiteSource(dbPath string, logger *zap.Logger) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	logger.Info("sqlite source opened", zap.String("path", dbPath))
	return &SQLiteSource{db: db, logger: logger}, nil
}

func (s *SQLiteSource) Name() string { return "sqlite" }

func (s *SQLiteSource) Load(ctx context.Context, symbol string) (model.PriceTable, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, open, high, low, close, volume
		FROM daily_prices WHERE symbol = ? ORDER BY date`, symbol)
	if err != nil {
		return nil, fmt.Errorf("query daily_prices: %w", err)
	}
	defer rows.Close()

	table := model.PriceTable{}
	for rows.Next() {
		var (
			date string
			row  model.PriceRow
		)
		if err := rows.Scan(&date, &row.Open, &row.High, &row.Low, &row.Close, &row.Volume); err != nil {
			return nil, fmt.Errorf("scan daily_prices: %w", err)
		}
		if row.Date, err = chart.ParseDate(date); err != nil {
			return nil, err
		}
		table = append(table, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily_prices: %w", err)
	}
	return table, nil
}

func (s *SQLiteSource) Close() error {
	s.logger.Info("closing sqlite source")
	return s.db.Close()
}
