package bot

import "github.com/mcoot/hangbot/internal/model"

// Strategy defines how a bot chooses its next letter.
// Implementations must not retain or mutate game state.
type Strategy interface {
	// ChooseLetter selects a letter not in guessed for the given pattern
	ChooseLetter(pattern string, guessed model.LetterSet) model.Decision
}
