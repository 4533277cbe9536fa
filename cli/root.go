package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"lp-solver/config"
	"lp-solver/logger"
	"lp-solver/solver"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	debug      bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:          "lp-solver",
		Short:        "Solve two-variable linear programs with the corner-point method",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a YAML config file (optional)")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().String("log-level", "info", "Log level: debug|info|warn|error")

	cmd.AddCommand(solveCmd(&flags))
	cmd.AddCommand(serveCmd(&flags))
	return cmd
}

// load resolves the configuration for cmd, honouring --debug.
func (f *rootFlags) load(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(f.configPath, cmd.Flags())
	if err != nil {
		return config.Config{}, nil, err
	}
	if f.debug {
		cfg.Log.Level = "debug"
	}

	l := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	return cfg, l, nil
}

func solverOptions(cfg config.SolverConfig) solver.Options {
	return solver.Options{
		Precision:       cfg.Precision,
		Tolerance:       cfg.Tolerance,
		ExcludeOrigin:   cfg.ExcludeOrigin,
		DetectUnbounded: cfg.DetectUnbounded,
	}
}
