package factory

import (
	"time"

	"github.com/mcoot/hangbot/internal/dependencies/mocks"
	"github.com/mcoot/hangbot/internal/storage/memory"
	"github.com/mcoot/hangbot/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	Memory     *memory.Storage
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// The corpus is not loaded; call LoadTestDictionary or LoadWords.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		Memory:     store,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// LoadTestDictionary loads and trains on the shared sample corpus
func (t *TestApp) LoadTestDictionary() error {
	return t.LoadWords(testutil.SampleCorpus...)
}

// LoadWords loads and trains on the given words
func (t *TestApp) LoadWords(words ...string) error {
	if err := t.DictionaryService.LoadWords(words); err != nil {
		return err
	}
	return t.train()
}
