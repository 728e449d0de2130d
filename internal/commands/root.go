package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	flags      overrides
)

// overrides are command-line values that win over the config file and env.
type overrides struct {
	symbol  string
	source  string
	input   string
	preset  string
	windows []int
	series  []string
	title   string
	out     string
}

var rootCmd = &cobra.Command{
	Use:   "pricechart",
	Short: "Turn daily price history into candlestick chart data",
	Long: `pricechart reads a daily price table (CSV export or SQLite) and builds
chart-ready series: OHLC candles, volume and simple moving averages, all
stamped with epoch milliseconds at UTC midnight.`,
	SilenceUsage: true,
}

// Execute runs the root command. Long-running commands stop when ctx is done.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	defaultConfig := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultConfig = v
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", defaultConfig, "config file")
	pf.StringVarP(&flags.symbol, "symbol", "s", "", "instrument symbol, e.g. BTC-USD")
	pf.StringVar(&flags.source, "source", "", "source kind: csv or sqlite")
	pf.StringVarP(&flags.input, "input", "i", "", "CSV file or SQLite database path")
	pf.StringVarP(&flags.preset, "preset", "p", "", "chart preset: highstock, candles or line")
	pf.IntSliceVarP(&flags.windows, "windows", "w", nil, "moving-average windows, e.g. 50,100")
	pf.StringSliceVar(&flags.series, "series", nil, "series to emit: ohlc,volume,close,sma")
	pf.StringVar(&flags.title, "title", "", "chart title")

	rootCmd.AddCommand(buildCmd, tableCmd, watchCmd)
}
