package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/qkp/instance"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     Config
	log     *slog.Logger
	out     io.Writer
}

// Execute runs the CLI against the process streams.
func Execute() error {
	return NewRootCmd(os.Stdout, os.Stderr).Execute()
}

// NewRootCmd builds a fresh command tree writing results to out and logs to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: newViper(), out: out}

	root := &cobra.Command{
		Use:           "qkp",
		Short:         "Quadratic knapsack DP solvers and benchmarks",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = newLogger(cfg.Log, errOut)
			a.log.Debug("config loaded", "file", a.cfgFile, "command", cmd.Name())

			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (yaml, json or toml)")
	root.PersistentFlags().String("log-level", "", "debug|info|warn|error")
	_ = a.v.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(a.solveCmd(), a.verifyCmd(), a.benchCmd(), a.genCmd())

	return root
}

// loadSuite returns the suite at path, or the embedded suite when path is empty.
func (a *app) loadSuite(path string) (*instance.Suite, error) {
	if path == "" {
		a.log.Debug("using embedded suite")

		return instance.Default(), nil
	}
	s, err := instance.Load(path)
	if err != nil {
		return nil, err
	}
	a.log.Info("suite loaded", "file", path, "cases", len(s.Cases))

	return s, nil
}
