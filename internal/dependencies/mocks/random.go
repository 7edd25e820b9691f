package mocks

import (
	"github.com/mcoot/hangbot/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// IntnCalls records the n passed to every Intn call
	IntnCalls []int

	// StringResults is a queue of results to return from String
	StringResults []string
	stringIndex   int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining.
// Queued values outside [0, n) are clamped so callers can index safely.
func (r *MockRandom) Intn(n int) int {
	r.IntnCalls = append(r.IntnCalls, n)
	if r.intnIndex >= len(r.IntnResults) || n <= 0 {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	if result < 0 {
		return 0
	}
	if result >= n {
		return n - 1
	}
	return result
}

// String returns the next queued result, or a run of 'x' of the requested
// length if none remaining
func (r *MockRandom) String(length int, alphabet string) string {
	if r.stringIndex >= len(r.StringResults) {
		r.stringIndex++
		return fallbackString(length, r.stringIndex)
	}
	result := r.StringResults[r.stringIndex]
	r.stringIndex++
	return result
}

// fallbackString builds a distinct string per call so unqueued IDs don't collide
func fallbackString(length, n int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = 'x'
	}
	for i := length - 1; i >= 0 && n > 0; i-- {
		b[i] = byte('0' + n%10)
		n /= 10
	}
	return string(b)
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.StringResults = append(r.StringResults, values...)
}

// Reset clears all queued results and recorded calls
func (r *MockRandom) Reset() {
	r.IntnResults = nil
	r.intnIndex = 0
	r.IntnCalls = nil
	r.StringResults = nil
	r.stringIndex = 0
}
