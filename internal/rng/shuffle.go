// Package rng implements the frozen determinism contract: a 64-bit
// seed, expanded via SplitMix64, drives a xoshiro256** generator that
// Fisher-Yates shuffles the canonical 52-card deck, with a
// rejection-sampled draw for unbiased index selection.
package rng

import "github.com/lox/pokercore/internal/cards"

// Shuffle returns the full 52-card permutation produced by the given
// seed. Same seed, same build of this package, same output — forever.
func Shuffle(seed uint64) [52]cards.Card {
	deck := cards.FullDeck()
	gen := newXoshiro256ss(seed)

	for i := len(deck) - 1; i > 0; i-- {
		j := gen.uniform(uint64(i + 1))
		deck[i], deck[j] = deck[j], deck[i]
	}
	return deck
}
