package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"PriceChart/internal/chart"
	"PriceChart/internal/report"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the price history and a summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()

		table, err := a.collector.Load(cmd.Context())
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()

		summary, err := report.Summarize(a.cfg.Symbol, table, a.bundle.Windows)
		var empty *chart.EmptyTableError
		if errors.As(err, &empty) {
			fmt.Fprintf(w, "%s: no data\n", a.cfg.Symbol)
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprint(w, report.FormatSummary(summary))
		fmt.Fprintln(w)
		return report.WriteTable(w, table)
	},
}
