package random

import (
	crand "crypto/rand"
	"math/rand/v2"
	"sync"
)

// Random is the source of every random choice: secret words, game IDs and
// the solver's last-resort pick
type Random interface {
	// Intn returns a random int in [0, n), or 0 when n <= 0
	Intn(n int) int

	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
}

// Source implements Random over a math/rand/v2 generator.
// It is safe for concurrent use, so one Source can serve concurrent games.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ Random = (*Source)(nil)

// New returns a Source seeded from crypto/rand, so no two runs match
func New() *Source {
	var seed [32]byte
	_, _ = crand.Read(seed[:])
	return &Source{rng: rand.New(rand.NewChaCha8(seed))}
}

// NewSeeded returns a Source whose sequence is fixed by seed
func NewSeeded(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

func (r *Source) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := range result {
		result[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(result)
}
