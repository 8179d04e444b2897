package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffleDeterministic(t *testing.T) {
	t.Parallel()

	first := Shuffle(123456)
	for i := 0; i < 1000; i++ {
		got := Shuffle(123456)
		require.Equal(t, first, got, "run %d diverged from the first shuffle", i)
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	t.Parallel()

	deck := Shuffle(42)
	seen := make(map[string]bool, 52)
	for _, c := range deck {
		assert.False(t, seen[c.String()], "duplicate card %s in shuffled deck", c)
		seen[c.String()] = true
	}
	assert.Len(t, seen, 52)
}

func TestShuffleDiffersAcrossSeeds(t *testing.T) {
	t.Parallel()

	a := Shuffle(1)
	b := Shuffle(2)
	assert.NotEqual(t, a, b)
}

func TestUniformRejectsModuloBiasRange(t *testing.T) {
	t.Parallel()

	gen := newXoshiro256ss(7)
	for i := 0; i < 10000; i++ {
		v := gen.uniform(7)
		assert.Less(t, v, uint64(7))
	}
}
