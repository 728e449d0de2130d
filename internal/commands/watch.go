package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"PriceChart/internal/scheduler"
)

var (
	cronSpec   string
	runOnStart bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the chart JSON on a cron schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.Close()

		spec := a.cfg.Schedule.Cron
		if cronSpec != "" {
			spec = cronSpec
		}

		out := &scheduler.FileOutput{Path: a.cfg.Output.Path}
		sched := scheduler.NewScheduler(cmd.Context(), a.collector, out, a.optionsConfig(), a.log)
		if err := sched.Register(spec); err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()

		if runOnStart {
			if err := sched.RunNow(); err != nil {
				a.log.Error("initial rebuild failed", zap.Error(err))
			}
		}
		a.log.Info("watching", zap.String("cron", spec), zap.String("output", out.Path))

		<-cmd.Context().Done()
		a.log.Info("shutdown signal received, stopping")
		return nil
	},
}

func init() {
	watchCmd.Flags().StringVar(&cronSpec, "cron", "", "cron spec with seconds, e.g. \"0 */5 * * * *\"")
	watchCmd.Flags().StringVarP(&flags.out, "out", "o", "", "output file")
	watchCmd.Flags().BoolVar(&runOnStart, "run-on-start", os.Getenv("RUN_ON_START") == "true", "rebuild once before the first tick")
}
