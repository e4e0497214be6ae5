package board

import (
	"log/slog"

	"github.com/mcoot/pexeso/internal/dependencies/random"
	"github.com/mcoot/pexeso/internal/model"
)

// DefaultSize is the side length of the board used for every game
const DefaultSize = 4

// Service builds shuffled boards
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new BoardService
func New(rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: rnd,
		logger: logger.With(slog.String("component", "board-service")),
	}
}

// Build lays out size*size/2 pairs and shuffles them uniformly
func (s *Service) Build(size int) (*model.Board, error) {
	board, err := model.NewBoard(size)
	if err != nil {
		return nil, err
	}
	s.Shuffle(board)

	s.logger.Debug("board built",
		slog.Int("size", size),
		slog.Int("pairs", board.TotalPairs()),
	)
	return board, nil
}

// Shuffle applies a Fisher-Yates permutation to the board's cells
func (s *Service) Shuffle(board *model.Board) {
	positions := board.Positions()
	for i := len(positions) - 1; i > 0; i-- {
		j := s.random.Intn(i + 1)
		board.Swap(positions[i], positions[j])
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	Build(size int) (*model.Board, error)
	Shuffle(board *model.Board)
}

var _ ServiceInterface = (*Service)(nil)
