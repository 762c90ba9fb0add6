package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/qkp/bench"
)

func (a *app) benchCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time and measure allocations of each algorithm over a suite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			algos, err := parseAlgorithms(a.cfg.Bench.Algorithms)
			if err != nil {
				return err
			}
			suite, err := a.loadSuite(file)
			if err != nil {
				return err
			}

			cfg := bench.Config{Runs: a.cfg.Bench.Runs, Algorithms: algos, Logger: a.log}
			a.log.Info("bench started", "cases", len(suite.Cases), "runs", cfg.Runs)
			report, err := bench.Run(cmd.Context(), suite, cfg)
			if err != nil {
				return err
			}

			if err = bench.Render(a.out, report); err != nil {
				return err
			}
			if err = report.CheckOrder(); err != nil {
				a.log.Warn("resource ordering not observed", "err", err)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "suite file (default: embedded suite)")
	cmd.Flags().IntP("runs", "r", 0, "timed calls per case and algorithm")
	cmd.Flags().StringSlice("algos", nil, "algorithms to run (default: all)")
	_ = a.v.BindPFlag("bench.runs", cmd.Flags().Lookup("runs"))
	_ = a.v.BindPFlag("bench.algorithms", cmd.Flags().Lookup("algos"))

	return cmd
}
