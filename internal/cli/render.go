package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcoot/pexeso/internal/model"
	"github.com/mcoot/pexeso/internal/services/game"
)

// HiddenCard is printed in place of a face-down card
const HiddenCard = "*"

// ConsoleRenderer prints the progress of a game to a terminal
type ConsoleRenderer struct {
	out    io.Writer
	styles styles
}

// NewConsoleRenderer creates a renderer writing to out
func NewConsoleRenderer(out io.Writer) *ConsoleRenderer {
	return &ConsoleRenderer{out: out, styles: newStyles(out)}
}

// Ensure ConsoleRenderer implements game.Renderer
var _ game.Renderer = (*ConsoleRenderer)(nil)

// ShowBoard prints the grid with row and column numbers
func (r *ConsoleRenderer) ShowBoard(board *model.Board) {
	var sb strings.Builder
	sb.WriteString("\n  ")
	for col := 0; col < board.Size; col++ {
		sb.WriteString(r.styles.coords.Render(strconv.Itoa(col)))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')

	for row := 0; row < board.Size; row++ {
		sb.WriteString(r.styles.coords.Render(strconv.Itoa(row)))
		sb.WriteByte(' ')
		for col := 0; col < board.Size; col++ {
			pos := model.Position{Row: row, Col: col}
			if board.IsRevealed(pos) {
				sb.WriteString(r.styles.revealed.Render(board.ValueAt(pos).String()))
			} else {
				sb.WriteString(r.styles.hidden.Render(HiddenCard))
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	fmt.Fprint(r.out, sb.String())
}

// ShowTurnStart announces whose turn it is along with the scores
func (r *ConsoleRenderer) ShowTurnStart(g *model.Game, actor model.Actor) {
	heading := r.styles.human.Render("▶ Your turn")
	if actor == model.ActorBot {
		heading = r.styles.bot.Render("▶ Bot's turn")
	}
	fmt.Fprintf(r.out, "\n%s %s\n", heading,
		r.styles.faint.Render(fmt.Sprintf("(you %d : %d bot)", g.Score.Human, g.Score.Bot)))
}

// ShowPick prints the card that was just turned over
func (r *ConsoleRenderer) ShowPick(actor model.Actor, pick int, pos model.Position, value model.CardValue) {
	who := "You turn"
	if actor == model.ActorBot {
		who = "Bot turns"
	}
	fmt.Fprintf(r.out, "%s over %s: %s\n", who, pos, r.styles.revealed.Render(value.String()))
}

// ShowInvalidMove explains why a pick was refused
func (r *ConsoleRenderer) ShowInvalidMove(err error) {
	fmt.Fprintf(r.out, "%s %s\n", r.styles.failure.Render("Invalid choice, try again."), r.styles.faint.Render(err.Error()))
}

// ShowTurnResult prints whether the turn found a pair
func (r *ConsoleRenderer) ShowTurnResult(result model.TurnResult) {
	var msg string
	switch {
	case result.Outcome == model.OutcomeMatch && result.Actor == model.ActorBot:
		msg = r.styles.success.Render("✔ Bot found a pair!")
	case result.Outcome == model.OutcomeMatch:
		msg = r.styles.success.Render("✔ Pair found!")
	case result.Actor == model.ActorBot:
		msg = r.styles.failure.Render("✘ Bot missed.")
	default:
		msg = r.styles.failure.Render("✘ Not a pair.")
	}
	fmt.Fprintln(r.out, msg)
}
