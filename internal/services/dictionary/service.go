package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mcoot/hangbot/internal/dependencies/random"
	"github.com/mcoot/hangbot/internal/model"
	"github.com/mcoot/hangbot/internal/storage"
)

// MinWordLength is the shortest word kept in the corpus
const MinWordLength = 4

// Service loads and serves the word corpus
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	words  []string
	index  map[string]struct{}
	loaded bool
}

// New creates a new dictionary Service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger.With(slog.String("component", "dictionary")),
		index:   make(map[string]struct{}),
	}
}

// LoadFromStorage loads corpus words previously saved to storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	return s.loadWords(words)
}

// LoadFromFile loads corpus words from a file (one word per line)
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open word list: %w", err)
	}
	defer file.Close()

	if err := s.LoadFromReader(ctx, file); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// LoadFromReader loads newline-delimited words and saves the usable ones to storage
func (s *Service) LoadFromReader(ctx context.Context, r io.Reader) error {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	words := Normalize(lines)
	if len(words) == 0 {
		return model.ErrEmptyCorpus
	}

	// Save to storage for future use
	if err := s.storage.SaveDictionaryWords(ctx, words); err != nil {
		return err
	}

	s.logger.Info("corpus loaded",
		slog.Int("lines", len(lines)),
		slog.Int("words", len(words)),
	)
	return s.loadWords(words)
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	return s.loadWords(Normalize(words))
}

func (s *Service) loadWords(words []string) error {
	if len(words) == 0 {
		return model.ErrEmptyCorpus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = make([]string, len(words))
	copy(s.words, words)
	s.index = make(map[string]struct{}, len(words))
	for _, word := range words {
		s.index[word] = struct{}{}
	}
	s.loaded = true
	return nil
}

// Normalize trims and lowercases raw entries and keeps, in order, only those
// longer than three characters made up solely of a-z
func Normalize(raw []string) []string {
	words := make([]string, 0, len(raw))
	for _, line := range raw {
		word := strings.ToLower(strings.TrimSpace(line))
		if len(word) < MinWordLength || !model.IsWord(word) {
			continue
		}
		words = append(words, word)
	}
	return words
}

// Words returns a copy of the corpus in load order
func (s *Service) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]string, len(s.words))
	copy(result, s.words)
	return result
}

// Contains checks if a word is in the corpus
func (s *Service) Contains(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.index[strings.ToLower(word)]
	return ok
}

// IsLoaded returns whether the corpus has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the corpus
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// RandomWord picks a corpus word using the given random source
func (s *Service) RandomWord(rnd random.Random) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return "", model.ErrDictionaryNotLoaded
	}
	return s.words[rnd.Intn(len(s.words))], nil
}
