package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qkp/instance"
	"github.com/katalvlaran/qkp/qkp"
)

func (a *app) solveCmd() *cobra.Command {
	var (
		file     string
		caseName string
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve suite cases with one algorithm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, err := qkp.ParseAlgorithm(a.cfg.Solve.Algorithm)
			if err != nil {
				return err
			}
			suite, err := a.loadSuite(file)
			if err != nil {
				return err
			}
			cases := suite.Cases
			if caseName != "" {
				c, err := suite.Case(caseName)
				if err != nil {
					return err
				}
				cases = []instance.Case{c}
			}

			opts := qkp.DefaultOptions()
			opts.Algorithm = algo
			for _, c := range cases {
				inst := c.Instance()
				sol, err := qkp.SolveContext(cmd.Context(), inst, opts)
				if err != nil {
					return fmt.Errorf("case %q: %w", c.Name, err)
				}
				a.log.Debug("solved", "case", c.Name, "algorithm", algo.String(), "items", len(sol.Selected))
				fmt.Fprintf(a.out, "%s\t%s\tselected=%v\tprofit=%g\tweight=%d/%d\n",
					c.Name, algo, sol.Selected, sol.Profit, sol.Weight(inst), inst.Capacity)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "suite file (default: embedded suite)")
	cmd.Flags().StringVarP(&caseName, "case", "c", "", "solve only this case")
	cmd.Flags().StringP("algo", "a", "", "classical|interaction|compact")
	_ = a.v.BindPFlag("solve.algorithm", cmd.Flags().Lookup("algo"))

	return cmd
}
