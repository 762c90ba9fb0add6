package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qkp/bench"
	"github.com/katalvlaran/qkp/qkp"
)

// errVerifyFailed is returned when any solver misses a recorded answer.
var errVerifyFailed = errors.New("verify: recorded answers not reproduced")

func (a *app) verifyCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every algorithm against recorded answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			suite, err := a.loadSuite(file)
			if err != nil {
				return err
			}
			report, err := bench.Verify(cmd.Context(), suite, qkp.Algorithms())
			if err != nil {
				return err
			}
			if err = bench.Render(a.out, report); err != nil {
				return err
			}
			if failed := report.Failures(); len(failed) > 0 {
				for _, f := range failed {
					a.log.Error("verification failed", "case", f.Case, "algorithm", f.Algorithm.String(), "status", f.Status.String())
				}

				return fmt.Errorf("%w: %d of %d", errVerifyFailed, len(failed), len(report.Results))
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "suite file (default: embedded suite)")

	return cmd
}
