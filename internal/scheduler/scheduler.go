package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"PriceChart/internal/chart"
	"PriceChart/internal/collector"
)

// Scheduler rebuilds the chart on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Output    Output
	Options   chart.OptionsConfig
	Logger    *zap.Logger
	Ctx       context.Context

	mu sync.Mutex
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, out Output, opts chart.OptionsConfig, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Output:    out,
		Options:   opts,
		Logger:    logger,
		Ctx:       ctx,
	}
}

// Register schedules the rebuild task.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.rebuildTask); err != nil {
		return fmt.Errorf("register rebuild task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.Logger.Info("scheduler started")
}

// Stop stops the cron scheduler and waits for a running rebuild to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.Logger.Info("scheduler stopped")
}

// RunNow rebuilds immediately. Runs never overlap; the output of a failed run
// is left as it was.
func (s *Scheduler) RunNow() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bundle, _, err := s.Collector.Collect(s.Ctx)
	if err != nil {
		return fmt.Errorf("collect: %w", err)
	}
	opts := chart.BuildOptions(bundle, s.Collector.Bundle, s.Options)
	if err := s.Output.Write(opts); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	s.Logger.Info("chart rebuilt",
		zap.String("symbol", bundle.Symbol),
		zap.Int("points", len(bundle.OHLC)),
		zap.String("output", s.Output.Name()))
	return nil
}

func (s *Scheduler) rebuildTask() {
	if err := s.RunNow(); err != nil {
		s.Logger.Error("scheduled rebuild failed", zap.Error(err))
	}
}
