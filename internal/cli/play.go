package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/pexeso/internal/factory"
	"github.com/mcoot/pexeso/internal/model"
)

func newPlayCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play against the bot",
		Long: `Play one or more games against the bot.

Pick a card by typing its row and column, e.g. "1 2". With --output json the
board and prompts go to stderr and only the final report is written to stdout.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithOutput(cmd, cfg, func(out *Output) error {
				return runPlay(cmd, cfg, cfg.NewLogger(cmd.ErrOrStderr()), out)
			})
		},
	}

	cmd.Flags().DurationVar(&cfg.BotDelay, "bot-delay", cfg.BotDelay, "Pause after each bot pick (env: PEXESO_BOT_DELAY)")
	cmd.Flags().StringVar(&cfg.Seed, "seed", cfg.Seed, "Seed for a reproducible game (env: PEXESO_SEED)")
	cmd.Flags().IntVarP(&cfg.Rounds, "rounds", "n", cfg.Rounds, "Number of games to play (env: PEXESO_ROUNDS)")

	return cmd
}

func runPlay(cmd *cobra.Command, cfg *Config, logger *slog.Logger, out *Output) error {
	factoryCfg, err := cfg.FactoryConfig(logger)
	if err != nil {
		return err
	}
	app, err := factory.New(factoryCfg)
	if err != nil {
		return err
	}

	// Keep stdout clean for the JSON report
	var display io.Writer = cmd.OutOrStdout()
	if cfg.Output == FormatJSON {
		display = cmd.ErrOrStderr()
	}
	input := NewConsoleInput(cmd.InOrStdin(), display)
	defer input.Close()
	renderer := NewConsoleRenderer(display)

	ctx := cmd.Context()
	report := PlayReport{}
	for round := 1; round <= cfg.Rounds; round++ {
		g, err := app.GameController.NewGame(ctx)
		if err != nil {
			return err
		}
		logger.Debug("starting round",
			slog.Int("round", round),
			slog.String("game_id", string(g.ID)),
		)

		summary, err := app.GameController.Play(ctx, g, input, renderer)
		if err != nil {
			if errors.Is(err, model.ErrInputClosed) {
				return fmt.Errorf("game %s abandoned: %w", g.ID, err)
			}
			return err
		}

		gameReport := newGameReport(summary)
		report.Games = append(report.Games, gameReport)
		if cfg.Output == FormatText {
			out.Print(gameReport)
		}
	}

	if cfg.Rounds > 1 {
		summaries, err := app.GameController.Summaries(ctx)
		if err != nil {
			return err
		}
		tally := newTallyReport(app.ScoringService.TallySummaries(summaries))
		report.Tally = &tally
		if cfg.Output == FormatText {
			out.Print(tally)
		}
	}

	if cfg.Output == FormatJSON {
		out.Print(report)
	}
	return nil
}
