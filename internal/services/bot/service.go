package bot

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/mcoot/hangbot/internal/model"
	"github.com/mcoot/hangbot/internal/services/game"
)

// MaxBotIterations is a safety limit for the PlayGame loop
const MaxBotIterations = 2 * model.AlphabetSize

// BotActionType represents the type of action a bot took
type BotActionType string

const (
	ActionGuess        BotActionType = "guess"
	ActionGameComplete BotActionType = "game_complete"
)

// BotAction represents a single action taken by a bot during PlayGame
type BotAction struct {
	Type      BotActionType
	Letter    rune
	Hit       bool
	Pattern   string // Pattern after the action
	TriesLeft int
	Decision  model.Decision
}

// Service drives games with bot strategies
type Service struct {
	gameController *game.Controller
	strategies     map[string]Strategy
	logger         *slog.Logger
}

// NewService creates a new bot Service
func NewService(
	gameController *game.Controller,
	strategies map[string]Strategy,
	logger *slog.Logger,
) *Service {
	return &Service{
		gameController: gameController,
		strategies:     strategies,
		logger:         logger.With(slog.String("component", "bot-service")),
	}
}

// Strategies returns the registered strategy names in sorted order
func (s *Service) Strategies() []string {
	names := make([]string, 0, len(s.strategies))
	for name := range s.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Strategy looks up a registered strategy by name
func (s *Service) Strategy(name string) (Strategy, error) {
	st, ok := s.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, name)
	}
	return st, nil
}

// PlayGame asks the strategy for letters until the game is won or lost.
// It returns every action taken, ending with ActionGameComplete.
func (s *Service) PlayGame(ctx context.Context, gameID model.GameID, strategy string) ([]BotAction, error) {
	st, err := s.Strategy(strategy)
	if err != nil {
		return nil, err
	}

	var actions []BotAction

	for range MaxBotIterations {
		if err := ctx.Err(); err != nil {
			return actions, err
		}

		g, err := s.gameController.GetGame(ctx, gameID)
		if err != nil {
			return actions, err
		}

		if g.IsComplete() {
			actions = append(actions, BotAction{
				Type:      ActionGameComplete,
				Pattern:   g.Pattern,
				TriesLeft: g.TriesLeft,
			})
			return actions, nil
		}

		decision := st.ChooseLetter(g.Pattern, g.Guessed)
		if !decision.HasLetter() {
			return actions, fmt.Errorf("%w: %s", model.ErrNoProgress, decision.Reason())
		}

		updated, outcome, err := s.gameController.Guess(ctx, gameID, decision.Letter)
		if err != nil {
			return actions, err
		}
		if !outcome.Applied {
			return actions, fmt.Errorf("%w: letter '%c' was already guessed", model.ErrNoProgress, decision.Letter)
		}

		s.logger.Debug("bot guessed",
			slog.String("game_id", string(gameID)),
			slog.String("letter", string(decision.Letter)),
			slog.Bool("hit", outcome.Hit),
			slog.String("reason", decision.Reason()),
		)

		actions = append(actions, BotAction{
			Type:      ActionGuess,
			Letter:    decision.Letter,
			Hit:       outcome.Hit,
			Pattern:   updated.Pattern,
			TriesLeft: updated.TriesLeft,
			Decision:  decision,
		})
	}

	return actions, model.ErrNoProgress
}
