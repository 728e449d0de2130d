package commands

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"PriceChart/internal/chart"
	"PriceChart/internal/scheduler"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build chart options JSON once",
	Long:  `Reads the price table, builds the chart bundle and writes the chart options as JSON to --out, or stdout when --out is "-".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()

		bundle, _, err := a.collector.Collect(cmd.Context())
		if err != nil {
			var empty *chart.EmptyTableError
			if errors.As(err, &empty) {
				a.log.Warn("no price data, nothing to chart")
			}
			return err
		}

		var out scheduler.Output = &scheduler.FileOutput{Path: a.cfg.Output.Path}
		if a.cfg.Output.Path == "-" {
			out = &scheduler.WriterOutput{W: os.Stdout}
		}
		return out.Write(chart.BuildOptions(bundle, a.bundle, a.optionsConfig()))
	},
}

func init() {
	buildCmd.Flags().StringVarP(&flags.out, "out", "o", "", `output file ("-" for stdout)`)
}
