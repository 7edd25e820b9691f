package model

import (
	"strings"
	"time"
	"unicode"
)

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateInProgress GameState = "in_progress" // Accepting guesses
	GameStateWon        GameState = "won"         // Every position revealed
	GameStateLost       GameState = "lost"        // Ran out of tries
)

// DefaultMaxTries is the number of wrong guesses allowed when none is given
const DefaultMaxTries = 6

// Game holds the state of a single hangman game
type Game struct {
	ID       GameID
	Secret   string
	MaxTries int

	TriesLeft int
	Guessed   LetterSet
	Pattern   string
	History   string // Letters in the order they were guessed
	State     GameState

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GuessOutcome describes what a single guess did to the game
type GuessOutcome struct {
	Letter  rune
	Applied bool // False when the guess was ignored
	Hit     bool // True when the letter revealed at least one position
}

// NewGame creates a game with every position hidden and full tries
func NewGame(id GameID, secret string, maxTries int) *Game {
	secret = strings.ToLower(secret)
	if maxTries < 0 {
		maxTries = 0
	}
	g := &Game{
		ID:        id,
		Secret:    secret,
		MaxTries:  maxTries,
		TriesLeft: maxTries,
		Pattern:   NewPattern(len(secret)),
		State:     GameStateInProgress,
	}
	g.updateState()
	return g
}

// ApplyGuess applies one guessed letter.
// Zero, non-letter and repeated guesses are ignored, as are guesses against a
// finished game.
func (g *Game) ApplyGuess(letter rune) GuessOutcome {
	letter = unicode.ToLower(letter)
	outcome := GuessOutcome{Letter: letter}

	if g.IsComplete() {
		return outcome
	}
	if _, ok := LetterIndex(letter); !ok || g.Guessed.Has(letter) {
		return outcome
	}

	g.Guessed = g.Guessed.Add(letter)
	g.History += string(letter)
	outcome.Applied = true

	if strings.ContainsRune(g.Secret, letter) {
		g.reveal(letter)
		outcome.Hit = true
	} else if g.TriesLeft > 0 {
		g.TriesLeft--
	}

	g.updateState()
	return outcome
}

func (g *Game) reveal(letter rune) {
	pattern := []byte(g.Pattern)
	for i := 0; i < len(g.Secret); i++ {
		if rune(g.Secret[i]) == letter {
			pattern[i] = byte(letter)
		}
	}
	g.Pattern = string(pattern)
}

func (g *Game) updateState() {
	switch {
	case IsSolved(g.Pattern):
		g.State = GameStateWon
	case g.TriesLeft <= 0:
		g.State = GameStateLost
	default:
		g.State = GameStateInProgress
	}
}

// IsWon returns true once every position has been revealed
func (g *Game) IsWon() bool {
	return g.State == GameStateWon
}

// IsLost returns true once the game has run out of tries
func (g *Game) IsLost() bool {
	return g.State == GameStateLost
}

// IsComplete returns true if the game is in a terminal state
func (g *Game) IsComplete() bool {
	return g.IsWon() || g.IsLost()
}

// WrongGuesses returns how many tries have been used
func (g *Game) WrongGuesses() int {
	return g.MaxTries - g.TriesLeft
}

// Display returns the pattern with spaces between positions
func (g *Game) Display() string {
	return DisplayPattern(g.Pattern)
}
