package catalog

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedRand int

func (f fixedRand) Intn(n int) int {
	return int(f) % n
}

func TestPickRandomEmpty(t *testing.T) {
	_, idx, ok := PickRandom(nil, fixedRand(0))
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
}

func TestPickRandomUsesSource(t *testing.T) {
	results := numberedRecords(5)
	rec, idx, ok := PickRandom(results, fixedRand(3))
	assert.True(t, ok)
	assert.Equal(t, 3, idx)
	assert.Equal(t, "q-04", rec.ID)
}

func TestPickRandomCoversRange(t *testing.T) {
	results := numberedRecords(4)
	rng := rand.New(rand.NewSource(7))
	seen := map[int]bool{}
	for i := 0; i < 400; i++ {
		_, idx, ok := PickRandom(results, rng)
		assert.True(t, ok)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 4)
		seen[idx] = true
	}
	assert.Len(t, seen, 4)
}
