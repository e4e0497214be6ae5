package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/pexeso/internal/services/board"
)

// RulesText describes how the game is played
var RulesText = []string{
	"Pexeso is played on a 4x4 grid of face-down cards holding 8 pairs.",
	"On your turn, turn over two cards by naming their row and column.",
	"If they match, the pair is yours and you go again.",
	"If they differ, they are turned back over and the bot plays.",
	"The bot remembers every card it has seen, including yours.",
	"When all pairs are found, whoever holds more pairs wins.",
}

// Rules is the rules of the game as printed or encoded
type Rules struct {
	BoardSize int      `json:"board_size"`
	Pairs     int      `json:"pairs"`
	Rules     []string `json:"rules"`
}

func newRulesCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:           "rules",
		Short:         "Explain the rules of the game",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithOutput(cmd, cfg, func(out *Output) error {
				if cfg.Output == FormatJSON {
					out.Print(Rules{
						BoardSize: board.DefaultSize,
						Pairs:     board.DefaultSize * board.DefaultSize / 2,
						Rules:     RulesText,
					})
					return nil
				}
				for _, line := range RulesText {
					out.PrintMessage(line)
				}
				return nil
			})
		},
	}
}
