package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mcoot/hangbot/internal/dependencies/clock"
	"github.com/mcoot/hangbot/internal/dependencies/random"
	"github.com/mcoot/hangbot/internal/model"
	"github.com/mcoot/hangbot/internal/services/bot"
	"github.com/mcoot/hangbot/internal/services/dictionary"
	"github.com/mcoot/hangbot/internal/services/game"
)

// Config describes a batch of bot games
type Config struct {
	Games    int
	MaxTries int
	Strategy string
	Workers  int
	// Trace keeps the full action list of the first game
	Trace bool
}

// DefaultConfig returns a single-worker solver run of 100 games
func DefaultConfig() Config {
	return Config{
		Games:    100,
		MaxTries: model.DefaultMaxTries,
		Strategy: model.BotStrategySolver,
		Workers:  1,
	}
}

// GameResult is the outcome of one simulated game
type GameResult struct {
	GameID       model.GameID    `json:"game_id"`
	Secret       string          `json:"secret"`
	Pattern      string          `json:"pattern"`
	Won          bool            `json:"won"`
	Guesses      int             `json:"guesses"`
	WrongGuesses int             `json:"wrong_guesses"`
	Actions      []bot.BotAction `json:"actions,omitempty"`
}

// Report summarises a simulation run
type Report struct {
	RunID    string        `json:"run_id"`
	Strategy string        `json:"strategy"`
	Games    int           `json:"games"`
	Wins     int           `json:"wins"`
	Losses   int           `json:"losses"`
	WinRate  float64       `json:"win_rate"`
	Elapsed  time.Duration `json:"elapsed"`
	Results  []GameResult  `json:"results"`
}

// Runner plays batches of games against secrets drawn from the corpus
type Runner struct {
	dictionary     *dictionary.Service
	gameController *game.Controller
	botService     *bot.Service
	clock          clock.Clock
	random         random.Random
	logger         *slog.Logger
}

func NewRunner(
	dictionaryService *dictionary.Service,
	gameController *game.Controller,
	botService *bot.Service,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Runner {
	return &Runner{
		dictionary:     dictionaryService,
		gameController: gameController,
		botService:     botService,
		clock:          clk,
		random:         rnd,
		logger:         logger.With(slog.String("component", "simulation")),
	}
}

// Run plays cfg.Games games and reports the results in the order the secrets
// were drawn. The first error stops the run.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Report, error) {
	if cfg.Games < 1 {
		return nil, fmt.Errorf("%w: games must be at least 1", model.ErrInvalidSimulation)
	}
	if cfg.MaxTries == 0 {
		cfg.MaxTries = model.DefaultMaxTries
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if _, err := r.botService.Strategy(cfg.Strategy); err != nil {
		return nil, err
	}

	// Secrets are drawn before any game starts so a seeded run is repeatable
	// regardless of worker scheduling
	secrets := make([]string, cfg.Games)
	for i := range secrets {
		secret, err := r.dictionary.RandomWord(r.random)
		if err != nil {
			return nil, err
		}
		secrets[i] = secret
	}

	runID := uuid.NewString()
	logger := r.logger.With(slog.String("run_id", runID))
	logger.Info("simulation started",
		slog.Int("games", cfg.Games),
		slog.String("strategy", cfg.Strategy),
		slog.Int("workers", cfg.Workers),
	)

	start := r.clock.Now()
	results := make([]GameResult, cfg.Games)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, secret := range secrets {
		g.Go(func() error {
			result, err := r.playOne(gctx, secret, cfg, cfg.Trace && i == 0)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Warn("simulation aborted", slog.String("error", err.Error()))
		return nil, err
	}

	report := &Report{
		RunID:    runID,
		Strategy: cfg.Strategy,
		Games:    cfg.Games,
		Elapsed:  r.clock.Since(start),
		Results:  results,
	}
	for _, res := range results {
		if res.Won {
			report.Wins++
		} else {
			report.Losses++
		}
	}
	report.WinRate = float64(report.Wins) / float64(report.Games) * 100

	logger.Info("simulation finished",
		slog.Int("wins", report.Wins),
		slog.Int("losses", report.Losses),
		slog.Float64("win_rate", report.WinRate),
		slog.Duration("elapsed", report.Elapsed),
	)

	return report, nil
}

func (r *Runner) playOne(ctx context.Context, secret string, cfg Config, trace bool) (GameResult, error) {
	if err := ctx.Err(); err != nil {
		return GameResult{}, err
	}

	g, err := r.gameController.CreateGame(ctx, secret, cfg.MaxTries)
	if err != nil {
		return GameResult{}, err
	}

	actions, err := r.botService.PlayGame(ctx, g.ID, cfg.Strategy)
	if err != nil {
		_ = r.gameController.DeleteGame(context.WithoutCancel(ctx), g.ID)
		return GameResult{}, err
	}

	final, err := r.gameController.GetGame(ctx, g.ID)
	if err != nil {
		_ = r.gameController.DeleteGame(context.WithoutCancel(ctx), g.ID)
		return GameResult{}, err
	}
	if err := r.gameController.DeleteGame(ctx, g.ID); err != nil {
		return GameResult{}, err
	}

	result := GameResult{
		GameID:       final.ID,
		Secret:       final.Secret,
		Pattern:      final.Display(),
		Won:          final.IsWon(),
		Guesses:      len(final.History),
		WrongGuesses: final.WrongGuesses(),
	}
	if trace {
		result.Actions = actions
	}

	r.logger.Debug("game finished",
		slog.String("game_id", string(final.ID)),
		slog.String("secret", final.Secret),
		slog.Bool("won", result.Won),
		slog.Int("guesses", result.Guesses),
	)

	return result, nil
}
