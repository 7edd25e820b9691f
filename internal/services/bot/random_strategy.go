package bot

import (
	"github.com/mcoot/hangbot/internal/dependencies/random"
	"github.com/mcoot/hangbot/internal/model"
)

// RandomStrategy picks uniformly among letters that have not been guessed
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseLetter returns a random unguessed letter, ignoring the pattern
func (s *RandomStrategy) ChooseLetter(pattern string, guessed model.LetterSet) model.Decision {
	remaining := guessed.Unguessed()
	if len(remaining) == 0 {
		return model.Decision{Source: model.SourceExhausted}
	}
	return model.Decision{
		Letter: remaining[s.random.Intn(len(remaining))],
		Source: model.SourceRandom,
	}
}
