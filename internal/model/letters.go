package model

import (
	"strings"
	"unicode"
)

const (
	// Alphabet is the set of letters the game is played with, in index order
	Alphabet = "abcdefghijklmnopqrstuvwxyz"
	// AlphabetSize is the number of letters in Alphabet
	AlphabetSize = len(Alphabet)
)

// LetterIndex maps a lowercase ASCII letter to 0..25
func LetterIndex(r rune) (int, bool) {
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return int(r - 'a'), true
}

// LetterAt returns the letter for an alphabet index
func LetterAt(idx int) rune {
	return rune('a' + idx)
}

// IsWord reports whether s is non-empty and consists solely of a-z
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if _, ok := LetterIndex(r); !ok {
			return false
		}
	}
	return true
}

// LetterSet is a set of lowercase letters stored as a 26-bit mask
type LetterSet uint32

const fullLetterSet LetterSet = 1<<AlphabetSize - 1

// NewLetterSet builds a set from the given letters, ignoring anything outside a-z
func NewLetterSet(letters ...rune) LetterSet {
	var s LetterSet
	for _, r := range letters {
		s = s.Add(r)
	}
	return s
}

// ParseLetterSet builds a set from a string such as "aei" or "a,e,i".
// Case is folded; separators and other non-letters are skipped.
func ParseLetterSet(s string) LetterSet {
	var set LetterSet
	for _, r := range s {
		set = set.Add(unicode.ToLower(r))
	}
	return set
}

// Add returns a copy of the set with r included
func (s LetterSet) Add(r rune) LetterSet {
	idx, ok := LetterIndex(r)
	if !ok {
		return s
	}
	return s | 1<<idx
}

// Has reports whether r is in the set
func (s LetterSet) Has(r rune) bool {
	idx, ok := LetterIndex(r)
	if !ok {
		return false
	}
	return s&(1<<idx) != 0
}

// Len returns the number of letters in the set
func (s LetterSet) Len() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// IsFull reports whether every letter of the alphabet is in the set
func (s LetterSet) IsFull() bool {
	return s&fullLetterSet == fullLetterSet
}

// Letters returns the members in alphabetical order
func (s LetterSet) Letters() []rune {
	out := make([]rune, 0, s.Len())
	for i := 0; i < AlphabetSize; i++ {
		if s&(1<<i) != 0 {
			out = append(out, LetterAt(i))
		}
	}
	return out
}

// Unguessed returns the letters not in the set, in alphabetical order
func (s LetterSet) Unguessed() []rune {
	return (^s & fullLetterSet).Letters()
}

// String renders the set as its letters, e.g. "aeit"
func (s LetterSet) String() string {
	return string(s.Letters())
}

// MarshalText encodes the set as its letter string
func (s LetterSet) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a letter string produced by MarshalText
func (s *LetterSet) UnmarshalText(text []byte) error {
	*s = ParseLetterSet(strings.TrimSpace(string(text)))
	return nil
}
