package solver

import (
	"sort"

	"github.com/mcoot/hangbot/internal/model"
)

// letterCounts is a per-letter tally indexed by alphabet position
type letterCounts = [model.AlphabetSize]int

// Tables holds letter statistics gathered from a single pass over the corpus.
// A Tables value is never modified after Train returns, so one instance can
// back any number of concurrent games.
type Tables struct {
	words      int
	positional []letterCounts
	adjacency  [model.AlphabetSize]letterCounts
	overall    letterCounts
	firstSeen  [model.AlphabetSize]int // Offset of each letter's first occurrence, -1 if never seen
	ranking    []rune
}

// Train builds the positional, adjacency and overall frequency tables.
// Characters outside a-z are skipped.
func Train(words []string) *Tables {
	t := &Tables{words: len(words)}

	firstSeen := &t.firstSeen
	for i := range firstSeen {
		firstSeen[i] = -1
	}
	seen := 0

	for _, word := range words {
		if len(word) > len(t.positional) {
			grown := make([]letterCounts, len(word))
			copy(grown, t.positional)
			t.positional = grown
		}

		for i := 0; i < len(word); i++ {
			idx, ok := model.LetterIndex(rune(word[i]))
			if !ok {
				continue
			}

			t.overall[idx]++
			t.positional[i][idx]++
			if firstSeen[idx] < 0 {
				firstSeen[idx] = seen
			}
			seen++

			if i > 0 {
				if prev, ok := model.LetterIndex(rune(word[i-1])); ok {
					t.adjacency[prev][idx]++
				}
			}
		}
	}

	t.ranking = rankLetters(t.overall, t.firstSeen)
	return t
}

// rankLetters orders the letters that occur at all by count, most common
// first, breaking ties by first occurrence
func rankLetters(counts letterCounts, firstSeen [model.AlphabetSize]int) []rune {
	var idxs []int
	for i, c := range counts {
		if c > 0 {
			idxs = append(idxs, i)
		}
	}
	sort.SliceStable(idxs, func(a, b int) bool {
		if counts[idxs[a]] != counts[idxs[b]] {
			return counts[idxs[a]] > counts[idxs[b]]
		}
		return firstSeen[idxs[a]] < firstSeen[idxs[b]]
	})

	ranking := make([]rune, len(idxs))
	for i, idx := range idxs {
		ranking[i] = model.LetterAt(idx)
	}
	return ranking
}

// WordCount returns the number of words the tables were trained on
func (t *Tables) WordCount() int {
	return t.words
}

// MaxLength returns the length of the longest trained word
func (t *Tables) MaxLength() int {
	return len(t.positional)
}

// Positional returns how many words have letter r at index i
func (t *Tables) Positional(i int, r rune) int {
	idx, ok := model.LetterIndex(r)
	if !ok || i < 0 || i >= len(t.positional) {
		return 0
	}
	return t.positional[i][idx]
}

// Adjacency returns how often next directly follows prev in the corpus
func (t *Tables) Adjacency(prev, next rune) int {
	p, ok := model.LetterIndex(prev)
	if !ok {
		return 0
	}
	n, ok := model.LetterIndex(next)
	if !ok {
		return 0
	}
	return t.adjacency[p][n]
}

// Overall returns the total occurrences of r across the corpus
func (t *Tables) Overall(r rune) int {
	idx, ok := model.LetterIndex(r)
	if !ok {
		return 0
	}
	return t.overall[idx]
}

// OverallRanking returns the letters seen in training, most common first
func (t *Tables) OverallRanking() []rune {
	out := make([]rune, len(t.ranking))
	copy(out, t.ranking)
	return out
}

// OverallCounts returns a copy of the overall table
func (t *Tables) OverallCounts() [model.AlphabetSize]int {
	return t.overall
}

// AdjacencyCounts returns a copy of the adjacency table, indexed [prev][next]
func (t *Tables) AdjacencyCounts() [model.AlphabetSize][model.AlphabetSize]int {
	return t.adjacency
}

// seenBefore reports whether letter index a first occurred in the corpus
// before letter index b. Unseen letters sort last.
func (t *Tables) seenBefore(a, b int) bool {
	fa, fb := t.firstSeen[a], t.firstSeen[b]
	if fa < 0 {
		return false
	}
	return fb < 0 || fa < fb
}

// PositionalCounts returns a copy of the positional table
func (t *Tables) PositionalCounts() [][model.AlphabetSize]int {
	out := make([][model.AlphabetSize]int, len(t.positional))
	copy(out, t.positional)
	return out
}

// TopAt returns up to n letters most often seen at index i, most common first
func (t *Tables) TopAt(i, n int) []rune {
	if i < 0 || i >= len(t.positional) {
		return nil
	}
	counts := t.positional[i]
	var idxs []int
	for idx, c := range counts {
		if c > 0 {
			idxs = append(idxs, idx)
		}
	}
	sort.SliceStable(idxs, func(a, b int) bool {
		return counts[idxs[a]] > counts[idxs[b]]
	})
	if len(idxs) > n {
		idxs = idxs[:n]
	}
	out := make([]rune, len(idxs))
	for k, idx := range idxs {
		out[k] = model.LetterAt(idx)
	}
	return out
}
