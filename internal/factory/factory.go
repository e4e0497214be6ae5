package factory

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/pexeso/internal/dependencies/clock"
	"github.com/mcoot/pexeso/internal/dependencies/random"
	"github.com/mcoot/pexeso/internal/model"
	"github.com/mcoot/pexeso/internal/services/board"
	"github.com/mcoot/pexeso/internal/services/game"
	"github.com/mcoot/pexeso/internal/services/match"
	"github.com/mcoot/pexeso/internal/services/scoring"
	"github.com/mcoot/pexeso/internal/storage"
	"github.com/mcoot/pexeso/internal/storage/memory"
)

// DefaultBotDelay is the pause after each card the bot turns over
const DefaultBotDelay = time.Second

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	BoardService   *board.Service
	MatchEngine    *match.Engine
	ScoringService *scoring.Service
	GameController *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Seed makes shuffles and blind guesses reproducible (optional)
	// If nil, a cryptographic source is used
	Seed *uint64
	// BotDelay is the pause after each bot pick; must not be negative
	BotDelay time.Duration
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	if cfg.BotDelay < 0 {
		return nil, fmt.Errorf("%w: bot delay must not be negative, got %s", model.ErrConfiguration, cfg.BotDelay)
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random = random.New()
	if cfg.Seed != nil {
		rnd = random.NewSeeded(*cfg.Seed)
		logger.Debug("using seeded random source", slog.Uint64("seed", *cfg.Seed))
	}

	return newWithDependencies(memory.New(), clk, rnd, cfg.BotDelay, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, botDelay time.Duration, logger *slog.Logger) *App {
	boardService := board.New(rnd, logger)
	matchEngine := match.New(logger)
	scoringService := scoring.New()
	gameController := game.NewController(store, boardService, matchEngine, scoringService, clk, rnd, logger, botDelay)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		BoardService:   boardService,
		MatchEngine:    matchEngine,
		ScoringService: scoringService,
		GameController: gameController,
	}
}
