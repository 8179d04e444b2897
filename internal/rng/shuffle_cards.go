package rng

import "github.com/lox/pokercore/internal/cards"

// ShuffleCards Fisher-Yates shuffles an arbitrary card slice in place
// and returns it, using the same seeded xoshiro256** generator as
// Shuffle but over caller-supplied cards rather than the canonical
// 52-card deck. It exists for the rollout EV evaluator, which
// needs many independent reshuffles of a remaining-deck suffix, not a
// fresh full-deck permutation. Never call this from a runtime code
// path — reshuffling a remaining deck is an ordered-deck operation and
// belongs behind the calibration boundary.
func ShuffleCards(seed uint64, deck []cards.Card) []cards.Card {
	out := append([]cards.Card(nil), deck...)
	gen := newXoshiro256ss(seed)
	for i := len(out) - 1; i > 0; i-- {
		j := gen.uniform(uint64(i + 1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}
