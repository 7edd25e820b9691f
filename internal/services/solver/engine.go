package solver

import (
	"log/slog"

	"github.com/mcoot/hangbot/internal/dependencies/random"
	"github.com/mcoot/hangbot/internal/model"
)

// AdjacencyWeight scales the adjacency score relative to positional counts,
// since it is conditioned on an actually revealed neighbour
const AdjacencyWeight = 1.5

// Engine chooses the next letter to guess for a hangman pattern.
// It is trained once at construction and holds no per-game state, so a single
// Engine can serve concurrent games.
type Engine struct {
	words  []string
	tables *Tables
	random random.Random
	logger *slog.Logger
}

// NewEngine trains an Engine on the given corpus.
// The random source is only used when every statistical fallback is exhausted.
func NewEngine(words []string, rnd random.Random, logger *slog.Logger) (*Engine, error) {
	if len(words) == 0 {
		return nil, model.ErrEmptyCorpus
	}

	corpus := make([]string, len(words))
	copy(corpus, words)

	e := &Engine{
		words:  corpus,
		tables: Train(corpus),
		random: rnd,
		logger: logger.With(slog.String("component", "solver")),
	}

	e.logger.Info("solver trained",
		slog.Int("words", len(corpus)),
		slog.Int("max_length", e.tables.MaxLength()),
	)

	return e, nil
}

// Tables returns the trained frequency tables
func (e *Engine) Tables() *Tables {
	return e.tables
}

// Candidates returns the corpus words consistent with pattern and guessed
func (e *Engine) Candidates(pattern string, guessed model.LetterSet) []string {
	return FilterCandidates(e.words, pattern, guessed)
}

// Guess returns the letter to play next, or 0 if every letter has been guessed
func (e *Engine) Guess(pattern string, guessed model.LetterSet) rune {
	return e.Decide(pattern, guessed).Letter
}

// ChooseLetter lets the Engine act as a bot strategy
func (e *Engine) ChooseLetter(pattern string, guessed model.LetterSet) model.Decision {
	return e.Decide(pattern, guessed)
}

// Decide runs the guessing cascade: candidate-word letter frequency, then the
// positional/adjacency model, then overall frequency, then a random pick.
func (e *Engine) Decide(pattern string, guessed model.LetterSet) model.Decision {
	d := e.decide(pattern, guessed)

	e.logger.Debug("letter chosen",
		slog.String("pattern", pattern),
		slog.String("guessed", guessed.String()),
		slog.String("source", string(d.Source)),
		slog.String("letter", string(d.Letter)),
		slog.Int("candidates", d.Candidates),
	)

	return d
}

func (e *Engine) decide(pattern string, guessed model.LetterSet) model.Decision {
	if guessed.IsFull() {
		return model.Decision{Source: model.SourceExhausted}
	}

	candidates := e.Candidates(pattern, guessed)
	if len(candidates) > 0 {
		if letter, count := tallyLetters(candidates).best(guessed); letter != 0 {
			return model.Decision{
				Letter:     letter,
				Source:     model.SourceCandidates,
				Candidates: len(candidates),
				Score:      float64(count),
			}
		}
	}

	if letter, score := e.modelScore(pattern, guessed); letter != 0 {
		return model.Decision{
			Letter:     letter,
			Source:     model.SourcePositional,
			Candidates: len(candidates),
			Score:      score,
		}
	}

	for _, r := range e.tables.ranking {
		if !guessed.Has(r) {
			return model.Decision{
				Letter:     r,
				Source:     model.SourceOverall,
				Candidates: len(candidates),
				Score:      float64(e.tables.Overall(r)),
			}
		}
	}

	remaining := guessed.Unguessed()
	return model.Decision{
		Letter:     remaining[e.random.Intn(len(remaining))],
		Source:     model.SourceRandom,
		Candidates: len(candidates),
	}
}

// modelScore scores unguessed letters by how often they occupy each hidden
// position, plus a weighted bonus for following a revealed letter directly.
// Only the position after a revealed letter is scored; the one before it is not.
func (e *Engine) modelScore(pattern string, guessed model.LetterSet) (rune, float64) {
	var scores [model.AlphabetSize]float64

	for i := 0; i < len(pattern); i++ {
		if pattern[i] == model.Placeholder {
			if i >= len(e.tables.positional) {
				continue
			}
			for idx, count := range e.tables.positional[i] {
				if !guessed.Has(model.LetterAt(idx)) {
					scores[idx] += float64(count)
				}
			}
			continue
		}

		if i+1 >= len(pattern) || pattern[i+1] != model.Placeholder {
			continue
		}
		prev, ok := model.LetterIndex(rune(pattern[i]))
		if !ok {
			continue
		}
		for idx, count := range e.tables.adjacency[prev] {
			if !guessed.Has(model.LetterAt(idx)) {
				scores[idx] += float64(count) * AdjacencyWeight
			}
		}
	}

	// Ties go to the letter that appears first in the corpus
	best := -1
	bestScore := 0.0
	for idx, score := range scores {
		if score <= 0 {
			continue
		}
		if score > bestScore || (score == bestScore && e.tables.seenBefore(idx, best)) {
			best, bestScore = idx, score
		}
	}
	if best < 0 {
		return 0, 0
	}
	return model.LetterAt(best), bestScore
}
