package simulation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/hangbot/internal/dependencies/clock"
	"github.com/mcoot/hangbot/internal/dependencies/mocks"
	"github.com/mcoot/hangbot/internal/dependencies/random"
	"github.com/mcoot/hangbot/internal/model"
	"github.com/mcoot/hangbot/internal/services/bot"
	"github.com/mcoot/hangbot/internal/services/dictionary"
	"github.com/mcoot/hangbot/internal/services/game"
	"github.com/mcoot/hangbot/internal/services/simulation"
	"github.com/mcoot/hangbot/internal/services/solver"
	"github.com/mcoot/hangbot/internal/storage/memory"
	"github.com/mcoot/hangbot/internal/testutil"
)

var smallCorpus = []string{"apple", "angle", "ankle", "table"}

var errStorageDown = errors.New("storage unavailable")

// flakyStorage fails the second read of a finished game, which is the
// runner's own read after the bot has seen the game end
type flakyStorage struct {
	*memory.Storage
	finishedReads map[model.GameID]int
}

func (f *flakyStorage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	g, err := f.Storage.GetGame(ctx, id)
	if err != nil || !g.IsComplete() {
		return g, err
	}
	f.finishedReads[id]++
	if f.finishedReads[id] > 1 {
		return nil, errStorageDown
	}
	return g, nil
}

type RunnerSuite struct {
	suite.Suite
	store      *memory.Storage
	mockClock  *mocks.MockClock
	mockRandom *mocks.MockRandom
	runner     *simulation.Runner
	ctx        context.Context
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func (s *RunnerSuite) SetupTest() {
	s.store = memory.New()
	s.mockClock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.mockClock.Step = time.Second
	s.mockRandom = mocks.NewMockRandom()
	s.ctx = context.Background()

	s.runner = newRunner(s.T(), s.store, s.mockClock, s.mockRandom, smallCorpus)
}

func newRunner(t *testing.T, store *memory.Storage, clk clock.Clock, rnd random.Random, words []string) *simulation.Runner {
	t.Helper()
	logger := testutil.NopLogger()

	dict := dictionary.New(store, logger)
	if err := dict.LoadWords(words); err != nil {
		t.Fatalf("loading words: %v", err)
	}
	engine, err := solver.NewEngine(dict.Words(), rnd, logger)
	if err != nil {
		t.Fatalf("training engine: %v", err)
	}

	controller := game.NewController(store, clk, rnd, logger)
	botService := bot.NewService(controller, map[string]bot.Strategy{
		model.BotStrategySolver: engine,
		model.BotStrategyRandom: bot.NewRandomStrategy(rnd),
	}, logger)

	return simulation.NewRunner(dict, controller, botService, clk, rnd, logger)
}

func (s *RunnerSuite) TestRunSolverWinsOnItsOwnCorpus() {
	s.mockRandom.QueueIntn(0, 3)

	report, err := s.runner.Run(s.ctx, simulation.Config{
		Games:    2,
		MaxTries: 6,
		Strategy: model.BotStrategySolver,
		Workers:  1,
	})
	s.Require().NoError(err)

	s.Equal(2, report.Games)
	s.Equal(2, report.Wins)
	s.Equal(0, report.Losses)
	s.Equal(100.0, report.WinRate)
	s.Equal(model.BotStrategySolver, report.Strategy)

	s.Require().Len(report.Results, 2)
	s.Equal("apple", report.Results[0].Secret)
	s.Equal("a p p l e", report.Results[0].Pattern)
	s.Equal(4, report.Results[0].Guesses)
	s.Equal(0, report.Results[0].WrongGuesses)
	s.Equal("table", report.Results[1].Secret)
	s.True(report.Results[1].Won)
	s.NotEqual(report.Results[0].GameID, report.Results[1].GameID)
}

func (s *RunnerSuite) TestRunReportsLosses() {
	s.mockRandom.QueueIntn(3)

	// Unqueued picks are 0, so the random strategy plays a, b, c in order
	report, err := s.runner.Run(s.ctx, simulation.Config{
		Games:    1,
		MaxTries: 1,
		Strategy: model.BotStrategyRandom,
	})
	s.Require().NoError(err)

	s.Equal(0, report.Wins)
	s.Equal(1, report.Losses)
	s.Equal(0.0, report.WinRate)

	result := report.Results[0]
	s.False(result.Won)
	s.Equal("_ a b _ _", result.Pattern)
	s.Equal(3, result.Guesses)
	s.Equal(1, result.WrongGuesses)
}

func (s *RunnerSuite) TestRunDeletesFinishedGames() {
	_, err := s.runner.Run(s.ctx, simulation.Config{Games: 3, Strategy: model.BotStrategySolver})
	s.Require().NoError(err)

	s.Equal(0, s.store.GameCount())
}

func (s *RunnerSuite) TestRunAssignsRunIDAndElapsed() {
	report, err := s.runner.Run(s.ctx, simulation.Config{Games: 1, Strategy: model.BotStrategySolver})
	s.Require().NoError(err)

	_, err = uuid.Parse(report.RunID)
	s.NoError(err)
	s.Positive(report.Elapsed)
}

func (s *RunnerSuite) TestTraceKeepsFirstGameActionsOnly() {
	report, err := s.runner.Run(s.ctx, simulation.Config{
		Games:    2,
		Strategy: model.BotStrategySolver,
		Trace:    true,
	})
	s.Require().NoError(err)

	first := report.Results[0].Actions
	s.Require().NotEmpty(first)
	s.Equal(bot.ActionGameComplete, first[len(first)-1].Type)
	s.Nil(report.Results[1].Actions)
}

func (s *RunnerSuite) TestNoActionsWithoutTrace() {
	report, err := s.runner.Run(s.ctx, simulation.Config{Games: 1, Strategy: model.BotStrategySolver})
	s.Require().NoError(err)

	s.Nil(report.Results[0].Actions)
}

func (s *RunnerSuite) TestRunDefaultsMaxTries() {
	s.mockRandom.QueueIntn(3)

	report, err := s.runner.Run(s.ctx, simulation.Config{Games: 1, Strategy: model.BotStrategyRandom})
	s.Require().NoError(err)

	// a, b, c, ... until six misses or "table" is spelt out
	s.LessOrEqual(report.Results[0].WrongGuesses, model.DefaultMaxTries)
}

func (s *RunnerSuite) TestRunRejectsInvalidConfig() {
	_, err := s.runner.Run(s.ctx, simulation.Config{Games: 0, Strategy: model.BotStrategySolver})
	s.ErrorIs(err, model.ErrInvalidSimulation)

	_, err = s.runner.Run(s.ctx, simulation.Config{Games: 1, Strategy: "psychic"})
	s.ErrorIs(err, model.ErrUnknownStrategy)

	_, err = s.runner.Run(s.ctx, simulation.Config{Games: 1, MaxTries: 40, Strategy: model.BotStrategySolver})
	s.ErrorIs(err, model.ErrInvalidMaxTries)
}

func (s *RunnerSuite) TestRunHonoursCancellation() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.runner.Run(ctx, simulation.Config{Games: 5, Strategy: model.BotStrategySolver})
	s.ErrorIs(err, context.Canceled)
	s.Equal(0, s.store.GameCount())
}

func (s *RunnerSuite) TestRunCleansUpWhenFinalReadFails() {
	logger := testutil.NopLogger()
	mem := memory.New()
	store := &flakyStorage{Storage: mem, finishedReads: map[model.GameID]int{}}

	dict := dictionary.New(store, logger)
	s.Require().NoError(dict.LoadWords(smallCorpus))
	engine, err := solver.NewEngine(dict.Words(), s.mockRandom, logger)
	s.Require().NoError(err)
	controller := game.NewController(store, s.mockClock, s.mockRandom, logger)
	botService := bot.NewService(controller, map[string]bot.Strategy{
		model.BotStrategySolver: engine,
	}, logger)
	runner := simulation.NewRunner(dict, controller, botService, s.mockClock, s.mockRandom, logger)

	_, err = runner.Run(s.ctx, simulation.Config{Games: 1, Strategy: model.BotStrategySolver})
	s.ErrorIs(err, errStorageDown)
	s.Equal(0, mem.GameCount())
}

func (s *RunnerSuite) TestRunWithoutCorpus() {
	logger := testutil.NopLogger()
	store := memory.New()
	controller := game.NewController(store, s.mockClock, s.mockRandom, logger)
	botService := bot.NewService(controller, map[string]bot.Strategy{
		model.BotStrategyRandom: bot.NewRandomStrategy(s.mockRandom),
	}, logger)
	runner := simulation.NewRunner(dictionary.New(store, logger), controller, botService, s.mockClock, s.mockRandom, logger)

	_, err := runner.Run(s.ctx, simulation.Config{Games: 1, Strategy: model.BotStrategyRandom})
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *RunnerSuite) TestConcurrentWorkersShareOneEngine() {
	store := memory.New()
	runner := newRunner(s.T(), store, clock.New(), random.NewSeeded(7), testutil.SampleCorpus)

	report, err := runner.Run(s.ctx, simulation.Config{
		Games:    40,
		Strategy: model.BotStrategySolver,
		Workers:  4,
	})
	s.Require().NoError(err)

	s.Len(report.Results, 40)
	s.Equal(40, report.Wins+report.Losses)
	for _, res := range report.Results {
		s.Contains(testutil.SampleCorpus, res.Secret)
		s.NotEmpty(res.GameID)
		if res.Won {
			s.Equal(model.DisplayPattern(res.Secret), res.Pattern)
		}
	}
	s.Equal(0, store.GameCount())
}

func (s *RunnerSuite) TestSeededRunsDrawTheSameSecrets() {
	secrets := func() []string {
		runner := newRunner(s.T(), memory.New(), clock.New(), random.NewSeeded(42), testutil.SampleCorpus)
		report, err := runner.Run(s.ctx, simulation.Config{Games: 10, Strategy: model.BotStrategySolver, Workers: 3})
		s.Require().NoError(err)
		out := make([]string, 0, len(report.Results))
		for _, res := range report.Results {
			out = append(out, res.Secret)
		}
		return out
	}

	s.Equal(secrets(), secrets())
}
