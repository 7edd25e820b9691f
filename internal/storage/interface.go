package storage

import (
	"context"

	"github.com/mcoot/hangbot/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error

	// Dictionary operations. Word order is preserved.
	GetDictionaryWords(ctx context.Context) ([]string, error)
	SaveDictionaryWords(ctx context.Context, words []string) error
}
