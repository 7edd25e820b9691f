package model

import "fmt"

// DecisionSource names the stage of the guessing cascade that produced a letter
type DecisionSource string

const (
	SourceCandidates DecisionSource = "candidates" // Letter frequency over matching words
	SourcePositional DecisionSource = "positional" // Positional and adjacency model
	SourceOverall    DecisionSource = "overall"    // Corpus-wide letter frequency
	SourceRandom     DecisionSource = "random"     // Uniform pick among unguessed letters
	SourceExhausted  DecisionSource = "exhausted"  // Nothing left to guess
)

// Decision is a chosen letter together with how it was chosen
type Decision struct {
	Letter     rune
	Source     DecisionSource
	Candidates int     // Number of corpus words matching the pattern
	Score      float64 // Winning tally or model score, 0 for random picks
}

// HasLetter reports whether the decision carries a letter to play
func (d Decision) HasLetter() bool {
	return d.Letter != 0
}

// Reason describes the decision in one line
func (d Decision) Reason() string {
	switch d.Source {
	case SourceCandidates:
		return fmt.Sprintf("found %d possible words, most common letter is '%c'", d.Candidates, d.Letter)
	case SourcePositional:
		return fmt.Sprintf("no matching words, positional/adjacency model picks '%c' (score %.1f)", d.Letter, d.Score)
	case SourceOverall:
		return fmt.Sprintf("falling back to overall frequency, picks '%c'", d.Letter)
	case SourceRandom:
		return fmt.Sprintf("no statistics left, random pick '%c'", d.Letter)
	case SourceExhausted:
		return "every letter has been guessed"
	default:
		return fmt.Sprintf("picked '%c'", d.Letter)
	}
}
