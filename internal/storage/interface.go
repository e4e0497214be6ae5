package storage

import (
	"context"

	"github.com/mcoot/pexeso/internal/model"
)

// Storage holds game sessions and their results for the life of the process
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error

	// Summary operations
	SaveSummary(ctx context.Context, summary *model.GameSummary) error
	GetSummary(ctx context.Context, id model.GameID) (*model.GameSummary, error)
	ListSummaries(ctx context.Context) ([]*model.GameSummary, error)
}
