package testutil

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// NopLogger returns a logger that discards all output.
// Use this in tests to avoid log noise.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// SampleCorpus is a small word list for tests that need realistic play
var SampleCorpus = []string{
	"apple", "angle", "ankle", "table", "cable", "fable", "gable", "sable",
	"stone", "store", "stork", "storm", "story", "stove", "shore", "shove",
	"plant", "plane", "plank", "place", "plate", "blade", "brave", "crane",
	"water", "wafer", "later", "hater", "eater", "tiger", "timer", "river",
	"house", "mouse", "horse", "nurse", "purse", "curse", "verse", "terse",
	"bread", "dream", "cream", "steam", "steal", "stealth", "health", "wealth",
	"garden", "harden", "warden", "burden", "border", "boarder", "order",
	"jump", "junk", "jazz", "fizz", "buzz", "quiz", "quack", "quick", "quilt",
}

// WriteWordList writes words one per line to a temp file and returns its path
func WriteWordList(t testing.TB, words ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0o600); err != nil {
		t.Fatalf("write word list: %v", err)
	}
	return path
}
