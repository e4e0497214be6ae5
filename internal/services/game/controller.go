package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mcoot/pexeso/internal/dependencies/clock"
	"github.com/mcoot/pexeso/internal/dependencies/random"
	"github.com/mcoot/pexeso/internal/model"
	"github.com/mcoot/pexeso/internal/services/board"
	"github.com/mcoot/pexeso/internal/services/bot"
	"github.com/mcoot/pexeso/internal/services/match"
	"github.com/mcoot/pexeso/internal/services/scoring"
	"github.com/mcoot/pexeso/internal/storage"
)

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// HumanInput supplies the human player's picks
type HumanInput interface {
	// ChoosePosition returns the position for the given pick (1 or 2) of the
	// current turn. Unparseable input is reported as model.ErrInvalidMove.
	ChoosePosition(ctx context.Context, board *model.Board, pick int) (model.Position, error)
}

// Renderer shows the progress of a game. It never changes game state.
type Renderer interface {
	ShowBoard(board *model.Board)
	ShowTurnStart(g *model.Game, actor model.Actor)
	ShowPick(actor model.Actor, pick int, pos model.Position, value model.CardValue)
	ShowInvalidMove(err error)
	ShowTurnResult(result model.TurnResult)
}

// Controller manages the game state machine and turn flow
type Controller struct {
	storage        storage.Storage
	boardService   board.ServiceInterface
	engine         match.EngineInterface
	scoringService *scoring.Service
	clock          clock.Clock
	random         random.Random
	logger         *slog.Logger
	botDelay       time.Duration

	// newStrategy gives each played game a fresh bot with no memory
	newStrategy func(b *model.Board) bot.Strategy
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	boardService board.ServiceInterface,
	engine match.EngineInterface,
	scoringService *scoring.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
	botDelay time.Duration,
) *Controller {
	c := &Controller{
		storage:        storage,
		boardService:   boardService,
		engine:         engine,
		scoringService: scoringService,
		clock:          clock,
		random:         random,
		logger:         logger.With(slog.String("component", "game-controller")),
		botDelay:       botDelay,
	}
	c.newStrategy = func(b *model.Board) bot.Strategy {
		return bot.NewMemory(b, c.random, c.logger)
	}
	return c
}

// NewGame deals a freshly shuffled board and stores the new session
func (c *Controller) NewGame(ctx context.Context) (*model.Game, error) {
	b, err := c.boardService.Build(board.DefaultSize)
	if err != nil {
		return nil, err
	}
	return c.startGame(ctx, b)
}

// NewGameWithBoard stores a session on a board dealt by the caller
func (c *Controller) NewGameWithBoard(ctx context.Context, b *model.Board) (*model.Game, error) {
	return c.startGame(ctx, b)
}

func (c *Controller) startGame(ctx context.Context, b *model.Board) (*model.Game, error) {
	gameID := model.GameID(c.random.String(12, gameIDAlphabet))
	g := model.NewGame(gameID, b, c.clock.Now())

	if err := c.storage.SaveGame(ctx, g); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(g.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(g.ID)),
		slog.Int("board_size", b.Size),
		slog.Int("total_pairs", b.TotalPairs()),
	)
	return g, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// Play runs turns until every pair is matched, then stores and returns the
// summary. The context is checked between turns.
func (c *Controller) Play(ctx context.Context, g *model.Game, input HumanInput, renderer Renderer) (*model.GameSummary, error) {
	if g.State == model.GameStateOver {
		return nil, model.ErrGameComplete
	}

	strategy := c.newStrategy(g.Board)

	for !c.engine.IsComplete(g) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := c.playTurn(ctx, g, strategy, input, renderer); err != nil {
			return nil, err
		}
	}

	return c.finish(ctx, g)
}

// playTurn runs one actor's two picks and applies the outcome
func (c *Controller) playTurn(ctx context.Context, g *model.Game, strategy bot.Strategy, input HumanInput, renderer Renderer) error {
	actor := g.CurrentActor()
	renderer.ShowTurnStart(g, actor)
	renderer.ShowBoard(g.Board)

	first, err := c.pick(ctx, g, actor, 1, strategy, input, renderer)
	if err != nil {
		return err
	}
	second, err := c.pick(ctx, g, actor, 2, strategy, input, renderer, first)
	if err != nil {
		return err
	}
	renderer.ShowBoard(g.Board)

	outcome := c.engine.EvaluatePair(g, first, second)
	result := c.engine.ResolveTurn(g, actor, first, second, outcome)
	strategy.Forget(outcome, first, second)
	strategy.PruneUnreachable()
	renderer.ShowTurnResult(result)

	switch {
	case c.engine.IsComplete(g):
		g.State = model.GameStateOver
	case outcome == model.OutcomeNoMatch:
		g.State = actor.Other().TurnState()
	}
	g.UpdatedAt = c.clock.Now()

	c.logger.Debug("turn finished",
		slog.String("game_id", string(g.ID)),
		slog.Int("turn", result.Number),
		slog.String("next_state", string(g.State)),
	)

	return c.storage.SaveGame(ctx, g)
}

// pick obtains, reveals and announces one card. Every revealed card is shown
// to the bot, whoever turned it.
func (c *Controller) pick(
	ctx context.Context,
	g *model.Game,
	actor model.Actor,
	n int,
	strategy bot.Strategy,
	input HumanInput,
	renderer Renderer,
	excluding ...model.Position,
) (model.Position, error) {
	var (
		pos model.Position
		err error
	)
	if actor == model.ActorBot {
		pos, err = c.botPick(g, n, strategy, excluding...)
	} else {
		pos, err = c.humanPick(ctx, g, n, input, renderer)
	}
	if err != nil {
		return model.Position{}, err
	}

	strategy.Observe(pos)
	renderer.ShowPick(actor, n, pos, g.Board.ValueAt(pos))
	if actor == model.ActorBot {
		c.clock.Sleep(c.botDelay)
	}
	return pos, nil
}

// humanPick re-prompts until the human names a face-down card
func (c *Controller) humanPick(ctx context.Context, g *model.Game, n int, input HumanInput, renderer Renderer) (model.Position, error) {
	for {
		pos, err := input.ChoosePosition(ctx, g.Board, n)
		if err == nil {
			err = c.engine.RevealPick(g, pos)
		}
		if err == nil {
			return pos, nil
		}
		if !errors.Is(err, model.ErrInvalidMove) {
			return model.Position{}, err
		}
		c.logger.Debug("invalid human pick",
			slog.String("game_id", string(g.ID)),
			slog.String("error", err.Error()),
		)
		renderer.ShowInvalidMove(err)
	}
}

func (c *Controller) botPick(g *model.Game, n int, strategy bot.Strategy, excluding ...model.Position) (model.Position, error) {
	pos, err := strategy.ChoosePosition(excluding...)
	if err != nil {
		return model.Position{}, fmt.Errorf("bot pick %d: %w", n, err)
	}
	if err := c.engine.RevealPick(g, pos); err != nil {
		return model.Position{}, fmt.Errorf("bot pick %d at %s: %w", n, pos, err)
	}
	return pos, nil
}

// finish records the result of a completed game
func (c *Controller) finish(ctx context.Context, g *model.Game) (*model.GameSummary, error) {
	now := c.clock.Now()
	g.State = model.GameStateOver
	g.UpdatedAt = now
	if err := c.storage.SaveGame(ctx, g); err != nil {
		return nil, err
	}

	summary := c.scoringService.Summarize(g, now)
	if err := c.storage.SaveSummary(ctx, summary); err != nil {
		c.logger.Error("failed to save summary",
			slog.String("game_id", string(g.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game completed",
		slog.String("game_id", string(g.ID)),
		slog.String("verdict", string(summary.Verdict)),
		slog.Int("human_score", summary.Score.Human),
		slog.Int("bot_score", summary.Score.Bot),
		slog.Int("turns", summary.Turns),
	)
	return summary, nil
}

// Summaries returns the results of all games finished in this process
func (c *Controller) Summaries(ctx context.Context) ([]*model.GameSummary, error) {
	return c.storage.ListSummaries(ctx)
}
