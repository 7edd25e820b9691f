package random

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededRandomIsReproducible(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for range 20 {
		assert.Equal(t, a.Intn(26), b.Intn(26))
	}
	assert.Equal(t, a.String(12, "abc"), b.String(12, "abc"))
}

func TestSeededRandomBounds(t *testing.T) {
	r := NewSeeded(7)

	for range 100 {
		v := r.Intn(5)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 5)
	}
	assert.Equal(t, 0, r.Intn(0))
	assert.Empty(t, r.String(0, "abc"))
	assert.Empty(t, r.String(3, ""))
}

func TestUnseededBounds(t *testing.T) {
	r := New()

	for range 100 {
		v := r.Intn(3)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 3)
	}
	assert.Equal(t, 0, r.Intn(-1))
	assert.Len(t, r.String(8, "xyz"), 8)
}

func TestSeedsDiverge(t *testing.T) {
	a := NewSeeded(1)
	b := NewSeeded(2)

	assert.NotEqual(t, a.String(32, "abcdefghijklmnopqrstuvwxyz"), b.String(32, "abcdefghijklmnopqrstuvwxyz"))
}

func TestConcurrentUse(t *testing.T) {
	r := NewSeeded(3)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				v := r.Intn(26)
				assert.GreaterOrEqual(t, v, 0)
				assert.Less(t, v, 26)
			}
		}()
	}
	wg.Wait()
}
