package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/mcoot/pexeso/internal/model"
	"github.com/mcoot/pexeso/internal/services/scoring"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
	styles styles
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut, styles: newStyles(out)}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == FormatJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == FormatJSON {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == FormatJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.out, string(data))
	} else {
		fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameReport:
		o.printGameReport(v)
	case TallyReport:
		o.printTallyReport(v)
	case PlayReport:
		for _, g := range v.Games {
			o.printGameReport(g)
		}
		if v.Tally != nil {
			o.printTallyReport(*v.Tally)
		}
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// GameReport is the end-of-game result
type GameReport struct {
	ID          string    `json:"id"`
	HumanScore  int       `json:"human_score"`
	BotScore    int       `json:"bot_score"`
	Verdict     string    `json:"verdict"`
	Turns       int       `json:"turns"`
	CompletedAt time.Time `json:"completed_at"`
}

// TallyReport is the result over several games
type TallyReport struct {
	Games      int    `json:"games"`
	HumanWins  int    `json:"human_wins"`
	BotWins    int    `json:"bot_wins"`
	Ties       int    `json:"ties"`
	HumanPairs int    `json:"human_pairs"`
	BotPairs   int    `json:"bot_pairs"`
	Leader     string `json:"leader"`
}

// PlayReport collects everything a play session produced
type PlayReport struct {
	Games []GameReport `json:"games"`
	Tally *TallyReport `json:"tally,omitempty"`
}

func newGameReport(s *model.GameSummary) GameReport {
	return GameReport{
		ID:          string(s.ID),
		HumanScore:  s.Score.Human,
		BotScore:    s.Score.Bot,
		Verdict:     string(s.Verdict),
		Turns:       s.Turns,
		CompletedAt: s.CompletedAt,
	}
}

func newTallyReport(t scoring.Tally) TallyReport {
	return TallyReport{
		Games:      t.Games,
		HumanWins:  t.HumanWins,
		BotWins:    t.BotWins,
		Ties:       t.Ties,
		HumanPairs: t.HumanPairs,
		BotPairs:   t.BotPairs,
		Leader:     string(t.Leader()),
	}
}

func verdictMessage(verdict string) string {
	switch model.Verdict(verdict) {
	case model.VerdictHuman:
		return "🏆 You win!"
	case model.VerdictBot:
		return "🤖 The bot wins!"
	default:
		return "🤝 It's a tie!"
	}
}

func (o *Output) printGameReport(r GameReport) {
	fmt.Fprintln(o.out)
	fmt.Fprintln(o.out, o.styles.banner.Render("🎉 Game over!"))
	fmt.Fprintf(o.out, "Your score: %d\n", r.HumanScore)
	fmt.Fprintf(o.out, "Bot score: %d\n", r.BotScore)
	fmt.Fprintf(o.out, "Turns: %d\n", r.Turns)
	fmt.Fprintln(o.out, o.styles.title.Render(verdictMessage(r.Verdict)))
}

func (o *Output) printTallyReport(t TallyReport) {
	fmt.Fprintln(o.out)
	fmt.Fprintln(o.out, o.styles.title.Render(fmt.Sprintf("After %d games", t.Games)))
	fmt.Fprintf(o.out, "  You won: %d\n", t.HumanWins)
	fmt.Fprintf(o.out, "  Bot won: %d\n", t.BotWins)
	fmt.Fprintf(o.out, "  Ties: %d\n", t.Ties)
	fmt.Fprintf(o.out, "  Pairs: you %d, bot %d\n", t.HumanPairs, t.BotPairs)
	fmt.Fprintln(o.out, o.styles.title.Render("Overall: "+verdictMessage(t.Leader)))
}
