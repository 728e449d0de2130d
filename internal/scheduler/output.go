package scheduler

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"PriceChart/internal/chart"
)

// Output receives each rebuilt chart.
type Output interface {
	Write(opts chart.Options) error
	Name() string
}

// FileOutput replaces a JSON file atomically, so readers never see a partial chart.
type FileOutput struct {
	Path string
}

func (o *FileOutput) Name() string { return o.Path }

func (o *FileOutput) Write(opts chart.Options) error {
	dir := filepath.Dir(o.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".chart-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := encode(tmp, opts); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), o.Path); err != nil {
		return fmt.Errorf("replace output: %w", err)
	}
	return nil
}

// WriterOutput streams each chart to w, e.g. stdout.
type WriterOutput struct {
	W io.Writer
}

func (o *WriterOutput) Name() string { return "stream" }

func (o *WriterOutput) Write(opts chart.Options) error {
	return encode(o.W, opts)
}

func encode(w io.Writer, opts chart.Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(opts); err != nil {
		return fmt.Errorf("encode chart options: %w", err)
	}
	return nil
}
