package memory

import (
	"context"
	"sync"

	"github.com/mcoot/hangbot/internal/model"
	"github.com/mcoot/hangbot/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	games           map[model.GameID]*model.Game
	dictionaryWords []string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		games: make(map[model.GameID]*model.Game),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

// SaveGame stores a copy so later mutations by the caller don't leak in
func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *game
	s.games[game.ID] = &stored
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	result := *game
	return &result, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
	return nil
}

// GameCount returns the number of stored games
func (s *Storage) GameCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.dictionaryWords == nil {
		return nil, model.ErrDictionaryNotLoaded
	}
	result := make([]string, len(s.dictionaryWords))
	copy(result, s.dictionaryWords)
	return result, nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dictionaryWords = make([]string, len(words))
	copy(s.dictionaryWords, words)
	return nil
}
