package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/hangbot/internal/dependencies/clock"
	"github.com/mcoot/hangbot/internal/dependencies/random"
	"github.com/mcoot/hangbot/internal/model"
	"github.com/mcoot/hangbot/internal/services/bot"
	"github.com/mcoot/hangbot/internal/services/dictionary"
	"github.com/mcoot/hangbot/internal/services/game"
	"github.com/mcoot/hangbot/internal/services/simulation"
	"github.com/mcoot/hangbot/internal/services/solver"
	"github.com/mcoot/hangbot/internal/storage"
	"github.com/mcoot/hangbot/internal/storage/memory"
	redisstorage "github.com/mcoot/hangbot/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DictionaryService *dictionary.Service
	GameController    *game.Controller

	// Trained on the loaded corpus, nil until LoadCorpus succeeds
	Engine     *solver.Engine
	BotService *bot.Service
	Runner     *simulation.Runner

	logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is the word list to train on.
	// If empty, the corpus saved in storage by a previous run is used.
	DictionaryPath string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Seed makes every random choice repeatable; 0 uses crypto/rand
	Seed uint64
}

// New creates a new application with all dependencies wired and the solver
// trained on the configured corpus
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random = random.New()
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	}

	app := newWithDependencies(store, clk, rnd, logger)
	if err := app.LoadCorpus(ctx, cfg.DictionaryPath); err != nil {
		_ = app.Close()
		return nil, err
	}

	return app, nil
}

func newStorage(cfg Config) (storage.Storage, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return redisStore, nil
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory' or 'redis'", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		DictionaryService: dictionary.New(store, logger),
		GameController:    game.NewController(store, clk, rnd, logger),
		logger:            logger,
	}
}

// LoadCorpus loads the word list at path, or the stored corpus when path is
// empty, and trains the solver on it
func (a *App) LoadCorpus(ctx context.Context, path string) error {
	var err error
	if path != "" {
		err = a.DictionaryService.LoadFromFile(ctx, path)
	} else {
		err = a.DictionaryService.LoadFromStorage(ctx)
	}
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}

	return a.train()
}

func (a *App) train() error {
	if !a.DictionaryService.IsLoaded() {
		return model.ErrDictionaryNotLoaded
	}

	engine, err := solver.NewEngine(a.DictionaryService.Words(), a.Random, a.logger)
	if err != nil {
		return err
	}

	a.Engine = engine
	a.BotService = bot.NewService(a.GameController, map[string]bot.Strategy{
		model.BotStrategySolver: engine,
		model.BotStrategyRandom: bot.NewRandomStrategy(a.Random),
	}, a.logger)
	a.Runner = simulation.NewRunner(a.DictionaryService, a.GameController, a.BotService, a.Clock, a.Random, a.logger)

	return nil
}

// Close releases the storage backend's connections, if it holds any
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
