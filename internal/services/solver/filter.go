package solver

import "github.com/mcoot/hangbot/internal/model"

// Matches reports whether word is consistent with pattern and the guessed set.
// Revealed positions must match exactly; hidden positions must hold a letter
// that has not been guessed, since a guessed letter would already be shown.
func Matches(word, pattern string, guessed model.LetterSet) bool {
	if len(word) != len(pattern) {
		return false
	}
	for i := 0; i < len(word); i++ {
		c := word[i]
		if pattern[i] == model.Placeholder {
			if guessed.Has(rune(c)) {
				return false
			}
			continue
		}
		if pattern[i] != c {
			return false
		}
	}
	return true
}

// FilterCandidates returns, in corpus order, the words consistent with pattern
func FilterCandidates(words []string, pattern string, guessed model.LetterSet) []string {
	var candidates []string
	for _, word := range words {
		if Matches(word, pattern, guessed) {
			candidates = append(candidates, word)
		}
	}
	return candidates
}

// tally counts letters across a list of words, remembering the order in which
// each letter first appeared
type tally struct {
	counts letterCounts
	order  []rune
}

func tallyLetters(words []string) tally {
	var t tally
	for _, word := range words {
		for i := 0; i < len(word); i++ {
			idx, ok := model.LetterIndex(rune(word[i]))
			if !ok {
				continue
			}
			if t.counts[idx] == 0 {
				t.order = append(t.order, rune(word[i]))
			}
			t.counts[idx]++
		}
	}
	return t
}

// best returns the most frequent letter not in guessed; earlier first
// occurrence wins ties
func (t tally) best(guessed model.LetterSet) (rune, int) {
	var letter rune
	count := 0
	for _, r := range t.order {
		if guessed.Has(r) {
			continue
		}
		idx, _ := model.LetterIndex(r)
		if t.counts[idx] > count {
			letter, count = r, t.counts[idx]
		}
	}
	return letter, count
}
