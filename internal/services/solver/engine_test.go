package solver_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/hangbot/internal/dependencies/mocks"
	"github.com/mcoot/hangbot/internal/dependencies/random"
	"github.com/mcoot/hangbot/internal/model"
	"github.com/mcoot/hangbot/internal/services/solver"
	"github.com/mcoot/hangbot/internal/testutil"
)

type EngineSuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
}

func (s *EngineSuite) newEngine(words ...string) *solver.Engine {
	e, err := solver.NewEngine(words, s.mockRandom, testutil.NopLogger())
	s.Require().NoError(err)
	return e
}

func (s *EngineSuite) TestNewEngineRejectsEmptyCorpus() {
	_, err := solver.NewEngine(nil, s.mockRandom, testutil.NopLogger())
	s.ErrorIs(err, model.ErrEmptyCorpus)
}

func (s *EngineSuite) TestCandidateTallyPicksMostFrequentLetter() {
	e := s.newEngine("apple", "angle")

	d := e.Decide(model.ParsePattern("a _ _ _ e"), 0)

	// Tally over "appleangle" is a:2 p:2 l:2 e:2 n:1 g:1
	s.Equal(model.SourceCandidates, d.Source)
	s.Equal(2, d.Candidates)
	s.Contains([]rune{'a', 'p', 'l', 'e'}, d.Letter)
	s.Equal(2.0, d.Score)
	// Ties go to the letter seen first
	s.Equal('a', d.Letter)
}

func (s *EngineSuite) TestCandidateTallyWithThreeMatchingWords() {
	e := s.newEngine("apple", "angle", "ankle")

	d := e.Decide("a___e", 0)

	// ankle fits a___e as well, so the tally is a:3 l:3 e:3 p:2 n:2 g:1 k:1
	s.Equal(3, d.Candidates)
	s.Contains([]rune{'a', 'l', 'e'}, d.Letter)
}

func (s *EngineSuite) TestCandidateTallySkipsGuessedLetters() {
	e := s.newEngine("apple", "angle", "ankle")

	d := e.Decide("a___e", model.NewLetterSet('a', 'e'))

	// l is the only letter shared by all three
	s.Equal(model.SourceCandidates, d.Source)
	s.Equal('l', d.Letter)
}

func (s *EngineSuite) TestGuessedLetterAtHiddenPositionExcludesWord() {
	e := s.newEngine("apple", "angle")

	// p guessed but not shown, so apple is out
	d := e.Decide("a___e", model.NewLetterSet('a', 'e', 'p'))

	s.Equal(1, d.Candidates)
	s.Contains([]rune{'n', 'g', 'l'}, d.Letter)
}

func (s *EngineSuite) TestPositionalFallback() {
	e := s.newEngine("abcd", "abce", "xbcf")

	// No five-letter words, so the positional model decides: b and c both
	// score 3 and b appears first in the corpus
	d := e.Decide("_____", 0)

	s.Equal(model.SourcePositional, d.Source)
	s.Equal(0, d.Candidates)
	s.Equal('b', d.Letter)
	s.Equal(3.0, d.Score)
}

func (s *EngineSuite) TestPositionalTieGoesToFirstCorpusLetter() {
	e := s.newEngine("cbxx", "cbyy")

	// c at index 0 and b at index 1 both score 2; c comes first in the
	// corpus although b is earlier in the alphabet
	d := e.Decide("__", 0)

	s.Equal(model.SourcePositional, d.Source)
	s.Equal('c', d.Letter)
	s.Equal(2.0, d.Score)
}

func (s *EngineSuite) TestAdjacencyScoresLetterAfterRevealedLetter() {
	e := s.newEngine("abcd", "dddd")

	d := e.Decide("zzzzb_", model.NewLetterSet('z', 'b'))

	s.Equal(model.SourcePositional, d.Source)
	s.Equal('c', d.Letter)
	s.Equal(solver.AdjacencyWeight, d.Score)
}

// The adjacency model only looks forward from a revealed letter. A hidden
// position directly before a revealed letter gets no adjacency score, even
// though "ab" would suggest 'a' before 'b'.
func (s *EngineSuite) TestAdjacencyDoesNotLookBackward() {
	e := s.newEngine("abcd", "dddd")

	d := e.Decide("zzzz_b", model.NewLetterSet('z', 'b'))

	s.Equal(model.SourceOverall, d.Source)
	s.Equal('d', d.Letter)
}

func (s *EngineSuite) TestAdjacencyAddsToPositional() {
	e := s.newEngine("abcd", "abce", "xbcf")

	// Hidden positions 2 and 3 plus the b->c bigram
	d := e.Decide("xb__z", model.NewLetterSet('x', 'b', 'z'))

	s.Equal(model.SourcePositional, d.Source)
	s.Equal('c', d.Letter)
	s.Equal(3+3*solver.AdjacencyWeight, d.Score)
}

func (s *EngineSuite) TestOverallFallback() {
	e := s.newEngine("eeee", "abcd")

	// Hidden positions lie past the longest trained word and q has no successors
	d := e.Decide("qqqq_____", model.NewLetterSet('q'))

	s.Equal(model.SourceOverall, d.Source)
	s.Equal('e', d.Letter)
	s.Equal(4.0, d.Score)
}

func (s *EngineSuite) TestOverallFallbackSkipsGuessed() {
	e := s.newEngine("eeee", "abcd")

	d := e.Decide("qqqq_____", model.NewLetterSet('q', 'e', 'a'))

	s.Equal(model.SourceOverall, d.Source)
	s.Equal('b', d.Letter)
}

func (s *EngineSuite) TestRandomFallback() {
	e := s.newEngine("abcd")
	s.mockRandom.QueueIntn(0)

	d := e.Decide("abcd", model.NewLetterSet('a', 'b', 'c', 'd'))

	s.Equal(model.SourceRandom, d.Source)
	s.Equal('e', d.Letter)
	s.Equal([]int{22}, s.mockRandom.IntnCalls)
}

func (s *EngineSuite) TestRandomFallbackUsesInjectedSource() {
	e := s.newEngine("abcd")
	s.mockRandom.QueueIntn(21)

	letter := e.Guess("abcd", model.NewLetterSet('a', 'b', 'c', 'd'))

	s.Equal('z', letter)
}

func (s *EngineSuite) TestExhaustedAlphabet() {
	e := s.newEngine("abcd")

	d := e.Decide("____", model.ParseLetterSet(model.Alphabet))

	s.Equal(model.SourceExhausted, d.Source)
	s.False(d.HasLetter())
	s.Empty(s.mockRandom.IntnCalls)
}

func (s *EngineSuite) TestGuessIsTotal() {
	rnd := random.NewSeeded(1)
	e, err := solver.NewEngine(testutil.SampleCorpus, rnd, testutil.NopLogger())
	s.Require().NoError(err)

	for iter := 0; iter < 500; iter++ {
		var guessed model.LetterSet
		for range rnd.Intn(model.AlphabetSize) {
			guessed = guessed.Add(model.LetterAt(rnd.Intn(model.AlphabetSize)))
		}

		// Half of the patterns come from real words, half are arbitrary
		var pattern string
		if iter%2 == 0 {
			word := testutil.SampleCorpus[rnd.Intn(len(testutil.SampleCorpus))]
			pattern = maskWord(word, guessed)
		} else {
			pattern = rnd.String(1+rnd.Intn(10), "_____abcdefghijklmnopqrstuvwxyz")
		}

		letter := e.Guess(pattern, guessed)
		s.NotZero(letter, "pattern %q guessed %q", pattern, guessed)
		s.False(guessed.Has(letter), "pattern %q guessed %q returned %q", pattern, guessed, letter)
	}
}

func (s *EngineSuite) TestDecisionReason() {
	e := s.newEngine("apple", "angle")

	d := e.Decide("a___e", 0)

	s.Contains(d.Reason(), "found 2 possible words")
}

// maskWord hides every letter of word that is not in guessed
func maskWord(word string, guessed model.LetterSet) string {
	out := []byte(word)
	for i := range out {
		if !guessed.Has(rune(out[i])) {
			out[i] = model.Placeholder
		}
	}
	return string(out)
}
