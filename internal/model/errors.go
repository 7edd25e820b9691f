package model

import "errors"

// Common errors used across the application
var (
	// Game errors
	ErrGameNotFound    = errors.New("game not found")
	ErrGameComplete    = errors.New("game is already complete")
	ErrInvalidSecret   = errors.New("secret word must be non-empty and only contain letters a-z")
	ErrInvalidMaxTries = errors.New("max tries must be between 1 and 26")

	// Corpus errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
	ErrEmptyCorpus         = errors.New("corpus contains no usable words")

	// Bot errors
	ErrUnknownStrategy = errors.New("unknown bot strategy")
	ErrNoProgress      = errors.New("bot strategy made no progress")
)

// Simulation errors
var ErrInvalidSimulation = errors.New("invalid simulation config")
