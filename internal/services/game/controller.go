package game

import (
	"context"
	"log/slog"

	"github.com/mcoot/hangbot/internal/dependencies/clock"
	"github.com/mcoot/hangbot/internal/dependencies/random"
	"github.com/mcoot/hangbot/internal/model"
	"github.com/mcoot/hangbot/internal/storage"
)

const (
	// GameIDAlphabet is the character set for generating game IDs
	GameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// GameIDLength is the length of generated game IDs
	GameIDLength = 12
)

// Controller manages the lifecycle of stored games
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new GameController
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger.With(slog.String("component", "game-controller")),
	}
}

// CreateGame starts a new game for the given secret word
func (c *Controller) CreateGame(ctx context.Context, secret string, maxTries int) (*model.Game, error) {
	if !model.IsWord(secret) {
		return nil, model.ErrInvalidSecret
	}
	if maxTries < 1 || maxTries > model.AlphabetSize {
		return nil, model.ErrInvalidMaxTries
	}

	now := c.clock.Now()
	gameID := model.GameID(c.random.String(GameIDLength, GameIDAlphabet))

	game := model.NewGame(gameID, secret, maxTries)
	game.CreatedAt = now
	game.UpdatedAt = now

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Debug("game created",
		slog.String("game_id", string(gameID)),
		slog.Int("length", len(secret)),
		slog.Int("max_tries", maxTries),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// DeleteGame removes a game from storage
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	return c.storage.DeleteGame(ctx, gameID)
}

// Guess applies a letter to a game and saves the result.
// Repeated or invalid letters leave the game unchanged.
func (c *Controller) Guess(ctx context.Context, gameID model.GameID, letter rune) (*model.Game, model.GuessOutcome, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, model.GuessOutcome{}, err
	}

	if game.IsComplete() {
		return game, model.GuessOutcome{Letter: letter}, model.ErrGameComplete
	}

	outcome := game.ApplyGuess(letter)
	if !outcome.Applied {
		return game, outcome, nil
	}

	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, outcome, err
	}

	if game.IsComplete() {
		c.logger.Debug("game completed",
			slog.String("game_id", string(game.ID)),
			slog.String("state", string(game.State)),
			slog.String("pattern", game.Pattern),
			slog.Int("wrong_guesses", game.WrongGuesses()),
		)
	}

	return game, outcome, nil
}
