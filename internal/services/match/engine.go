package match

import (
	"fmt"
	"log/slog"

	"github.com/mcoot/pexeso/internal/model"
)

// Engine applies the pairing rules to a game. It holds no game state of its
// own; every call works on the session it is handed.
type Engine struct {
	logger *slog.Logger
}

// New creates a new match Engine
func New(logger *slog.Logger) *Engine {
	return &Engine{
		logger: logger.With(slog.String("component", "match-engine")),
	}
}

// ValidatePick checks that a position can be turned over
func (e *Engine) ValidatePick(g *model.Game, pos model.Position) error {
	if !g.Board.InBounds(pos) {
		return fmt.Errorf("%w: %w %s", model.ErrInvalidMove, model.ErrOutOfBounds, pos)
	}
	if g.Board.IsRevealed(pos) {
		return fmt.Errorf("%w: %w %s", model.ErrInvalidMove, model.ErrAlreadyRevealed, pos)
	}
	return nil
}

// RevealPick turns the card at pos face up
func (e *Engine) RevealPick(g *model.Game, pos model.Position) error {
	if g.IsComplete() {
		return model.ErrGameComplete
	}
	if err := e.ValidatePick(g, pos); err != nil {
		return err
	}
	g.Board.SetRevealed(pos, true)
	return nil
}

// EvaluatePair compares the values of two cells
func (e *Engine) EvaluatePair(g *model.Game, a, b model.Position) model.Outcome {
	if g.Board.ValueAt(a) == g.Board.ValueAt(b) {
		return model.OutcomeMatch
	}
	return model.OutcomeNoMatch
}

// ResolveTurn settles a turn: a match stays face up and scores for the actor,
// a miss is turned face down again
func (e *Engine) ResolveTurn(g *model.Game, actor model.Actor, a, b model.Position, outcome model.Outcome) model.TurnResult {
	switch outcome {
	case model.OutcomeMatch:
		if actor == model.ActorBot {
			g.Score.Bot++
		} else {
			g.Score.Human++
		}
	default:
		g.Board.SetRevealed(a, false)
		g.Board.SetRevealed(b, false)
	}
	g.TurnCount++

	result := model.TurnResult{
		Number:      g.TurnCount,
		Actor:       actor,
		First:       a,
		Second:      b,
		FirstValue:  g.Board.ValueAt(a),
		SecondValue: g.Board.ValueAt(b),
		Outcome:     outcome,
		Score:       g.Score,
	}

	e.logger.Debug("turn resolved",
		slog.String("game_id", string(g.ID)),
		slog.Int("turn", result.Number),
		slog.String("actor", string(actor)),
		slog.String("first", a.String()),
		slog.String("second", b.String()),
		slog.String("outcome", string(outcome)),
		slog.Int("human_score", g.Score.Human),
		slog.Int("bot_score", g.Score.Bot),
	)

	return result
}

// IsComplete returns true once every pair on the board has been matched
func (e *Engine) IsComplete(g *model.Game) bool {
	return g.IsComplete()
}

// Interface for dependency injection
type EngineInterface interface {
	ValidatePick(g *model.Game, pos model.Position) error
	RevealPick(g *model.Game, pos model.Position) error
	EvaluatePair(g *model.Game, a, b model.Position) model.Outcome
	ResolveTurn(g *model.Game, actor model.Actor, a, b model.Position, outcome model.Outcome) model.TurnResult
	IsComplete(g *model.Game) bool
}

var _ EngineInterface = (*Engine)(nil)
