package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qkp/instance"
	"github.com/katalvlaran/qkp/qkp"
)

func (a *app) genCmd() *cobra.Command {
	var (
		gc     = instance.DefaultGenConfig()
		count  int
		out    string
		expect bool
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a reproducible random suite",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("%w: count=%d", instance.ErrBadGenConfig, count)
			}
			suite := &instance.Suite{Cases: make([]instance.Case, 0, count)}
			base := gc.Seed
			for k := 0; k < count; k++ {
				cfg := gc
				cfg.Seed = base + int64(k)
				c, err := instance.Generate(cfg)
				if err != nil {
					return err
				}
				if expect {
					sol, err := qkp.ClassicalDP(c.Instance())
					if err != nil {
						return err
					}
					c.Expected = &instance.Expected{Selected: sol.Selected, Profit: sol.Profit}
				}
				suite.Cases = append(suite.Cases, c)
			}

			a.log.Info("suite generated", "cases", count, "n", gc.N, "out", out)
			if out == "" {
				return instance.Encode(a.out, suite)
			}

			return instance.Save(out, suite)
		},
	}
	cmd.Flags().IntVar(&gc.N, "n", gc.N, "items per instance")
	cmd.Flags().IntVar(&gc.Capacity, "capacity", gc.Capacity, "capacity (0: half the total weight)")
	cmd.Flags().IntVar(&gc.MaxWeight, "max-weight", gc.MaxWeight, "maximum item weight")
	cmd.Flags().IntVar(&gc.MaxProfit, "max-profit", gc.MaxProfit, "maximum standalone profit")
	cmd.Flags().IntVar(&gc.MaxInteraction, "max-interaction", gc.MaxInteraction, "maximum pairwise profit")
	cmd.Flags().Float64Var(&gc.Density, "density", gc.Density, "probability that a pair interacts")
	cmd.Flags().Int64Var(&gc.Seed, "seed", 1, "seed of the first instance")
	cmd.Flags().IntVar(&count, "count", 1, "number of instances")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&expect, "expect", false, "record the classical DP answer as expected")

	return cmd
}
