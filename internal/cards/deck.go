package cards

// FullDeck returns the 52 distinct cards in canonical order: rank
// ascending 2..A (outer loop), suit S,H,D,C (inner loop). This is the
// ordering fed to the Fisher-Yates shuffle in internal/rng and the
// ordering used to enumerate deck_remaining_counts keys.
func FullDeck() [52]Card {
	var deck [52]Card
	i := 0
	for r := Two; r <= Ace; r++ {
		for s := Spades; s <= Clubs; s++ {
			deck[i] = Card{Rank: r, Suit: s}
			i++
		}
	}
	return deck
}

// Counts is an unordered multiset of cards, keyed by canonical card
// string. It backs the deck_remaining_counts projection; callers must
// use CanonicalKeys to iterate deterministically since Go map
// iteration order is randomized.
type Counts map[string]int

// CountRemaining builds the counts-map projection of a card slice,
// keyed by String().
func CountRemaining(remaining []Card) Counts {
	c := make(Counts, len(remaining))
	for _, card := range remaining {
		c[card.String()]++
	}
	return c
}

// CanonicalKeys returns every card string in canonical deck order
// (rank-major 2..A, suit S,H,D,C), regardless of whether it is present
// in the supplied Counts. Serializing deck_remaining_counts by walking
// this slice, emitting only present keys, makes the resulting JSON
// object's key order deterministic and immune to Go's randomized map
// iteration — downstream consumers rely on a deterministic key order.
func CanonicalKeys() []string {
	full := FullDeck()
	keys := make([]string, len(full))
	for i, c := range full {
		keys[i] = c.String()
	}
	return keys
}
