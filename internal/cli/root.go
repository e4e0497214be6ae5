package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "pexeso",
		Short: "Play the Pexeso memory game against a bot",
		Long: `pexeso is a console memory game. Cards lie face down on a 4x4 grid and
you take turns with a bot turning two of them over. Find a pair and you
keep it and go again; miss and the cards are turned back over.

The bot remembers every card it has seen, on its own turns and on yours.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: PEXESO_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Debug logging to stderr")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd(cfg))
	rootCmd.AddCommand(newRulesCmd(cfg))

	return rootCmd
}

// runWithOutput validates the configuration, runs the command and reports a
// failure in the configured output format
func runWithOutput(cmd *cobra.Command, cfg *Config, run func(out *Output) error) error {
	out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
	err := cfg.Validate()
	if err == nil {
		err = run(out)
	}
	if err != nil {
		out.PrintError(err)
	}
	return err
}

// Execute runs the root command. An interrupt cancels the game in progress.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
