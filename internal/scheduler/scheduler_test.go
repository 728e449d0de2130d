package scheduler

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"PriceChart/internal/chart"
	"PriceChart/internal/collector"
)

func newTestScheduler(t *testing.T, src collector.Source, out Output) *Scheduler {
	t.Helper()
	bc, err := chart.Preset("highstock")
	require.NoError(t, err)
	bc.Windows = []int{5, 20}
	col := collector.NewCollector(src, "BTC-USD", bc, zap.NewNop())
	return NewScheduler(context.Background(), col, out, chart.DefaultOptionsConfig, zap.NewNop())
}

func TestScheduler_RunNowWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "chart.json")
	src := &collector.StaticSource{Table: collector.GenerateTable(100, 30, time.Now())}
	s := newTestScheduler(t, src, &FileOutput{Path: path})

	require.NoError(t, s.RunNow())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded struct {
		Title struct {
			Text string `json:"text"`
		} `json:"title"`
		Series []struct {
			Name string            `json:"name"`
			Data []json.RawMessage `json:"data"`
		} `json:"series"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "BTC-USD Price Chart", decoded.Title.Text)
	require.Len(t, decoded.Series, 4)
	assert.Len(t, decoded.Series[0].Data, 30)
	assert.Len(t, decoded.Series[2].Data, 26)
	assert.Len(t, decoded.Series[3].Data, 11)
}

func TestScheduler_FailedRunKeepsOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.json")
	src := &collector.StaticSource{Table: collector.GenerateTable(100, 10, time.Now())}
	s := newTestScheduler(t, src, &FileOutput{Path: path})
	require.NoError(t, s.RunNow())
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	src.Err = errors.New("source offline")
	assert.ErrorContains(t, s.RunNow(), "source offline")

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestScheduler_Register(t *testing.T) {
	s := newTestScheduler(t, &collector.StaticSource{}, &WriterOutput{W: os.Stdout})
	assert.NoError(t, s.Register("0 */5 * * * *"))
	assert.Error(t, s.Register("not a cron"))

	s.Start()
	s.Stop()
}
