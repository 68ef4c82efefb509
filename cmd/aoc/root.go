package main

import (
	"context"

	"github.com/povarna/generative-ai-agents/aoc/internal/setup"
	"github.com/povarna/generative-ai-agents/aoc/internal/setup/logger"
	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	logLevel   string
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code 2023 puzzle solvers",
		Long: `aoc solves the Advent of Code 2023 puzzles for days 1 to 5.

Inputs are read from the paths in configs/puzzles.yaml (PUZZLES_CONFIG_PATH),
or from --input. Answers go to stdout, logs to stderr.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error, disabled (overrides LOG_LEVEL)")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Puzzles YAML config (overrides PUZZLES_CONFIG_PATH)")

	cmd.AddCommand(newSolveCmd(opts))
	cmd.AddCommand(newRunCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// wire builds the dependencies from the environment, with flags taking
// precedence.
func (o *options) wire() (*setup.Dependencies, error) {
	cfg := setup.LoadConfig()
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.configPath != "" {
		cfg.PuzzlesConfigPath = o.configPath
	}

	l := logger.New(cfg.LogLevel)
	return setup.Wire(cfg, &l)
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}
