package scoring

import (
	"time"

	"github.com/mcoot/pexeso/internal/model"
)

// Service turns final scores into verdicts and tallies
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// DetermineVerdict names the side with more pairs, or a tie
func (s *Service) DetermineVerdict(score model.Score) model.Verdict {
	switch {
	case score.Human > score.Bot:
		return model.VerdictHuman
	case score.Bot > score.Human:
		return model.VerdictBot
	default:
		return model.VerdictTie
	}
}

// Summarize creates the summary record for a finished game
func (s *Service) Summarize(g *model.Game, completedAt time.Time) *model.GameSummary {
	return &model.GameSummary{
		ID:          g.ID,
		Score:       g.Score,
		Verdict:     s.DetermineVerdict(g.Score),
		Turns:       g.TurnCount,
		CompletedAt: completedAt,
	}
}

// Tally counts results over several games
type Tally struct {
	Games      int
	HumanWins  int
	BotWins    int
	Ties       int
	HumanPairs int
	BotPairs   int
}

// Leader returns the overall verdict across all tallied games
func (t Tally) Leader() model.Verdict {
	switch {
	case t.HumanWins > t.BotWins:
		return model.VerdictHuman
	case t.BotWins > t.HumanWins:
		return model.VerdictBot
	default:
		return model.VerdictTie
	}
}

// TallySummaries aggregates game summaries
func (s *Service) TallySummaries(summaries []*model.GameSummary) Tally {
	var t Tally
	for _, sum := range summaries {
		t.Games++
		t.HumanPairs += sum.Score.Human
		t.BotPairs += sum.Score.Bot
		switch sum.Verdict {
		case model.VerdictHuman:
			t.HumanWins++
		case model.VerdictBot:
			t.BotWins++
		default:
			t.Ties++
		}
	}
	return t
}
