// Package classify implements the 5-card hand classifier: a pure,
// order-independent function from five cards to a HandCategory,
// simplified to the category-only result needed here — no best-of-7
// search, no kicker tiebreak data.
package classify

import "github.com/lox/pokercore/internal/cards"

// Category is a 5-card hand category, ordered weakest to strongest.
// The numeric value has no meaning beyond comparison
// within this package; scoring lives in internal/scoring.
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

func (c Category) String() string {
	switch c {
	case HighCard:
		return "HIGH_CARD"
	case OnePair:
		return "ONE_PAIR"
	case TwoPair:
		return "TWO_PAIR"
	case ThreeOfAKind:
		return "THREE_OF_A_KIND"
	case Straight:
		return "STRAIGHT"
	case Flush:
		return "FLUSH"
	case FullHouse:
		return "FULL_HOUSE"
	case FourOfAKind:
		return "FOUR_OF_A_KIND"
	case StraightFlush:
		return "STRAIGHT_FLUSH"
	default:
		return "UNKNOWN"
	}
}

// Classify categorizes exactly five cards. The [5]cards.Card parameter
// type fixes the count at compile time, so there is no size check at
// run time.
func Classify(hand [5]cards.Card) Category {
	var rankCounts [cards.NumRanks]int
	var suitCounts [cards.NumSuits]int
	for _, c := range hand {
		rankCounts[c.Rank]++
		suitCounts[c.Suit]++
	}

	flush := false
	for _, n := range suitCounts {
		if n == 5 {
			flush = true
			break
		}
	}

	straight := isStraight(rankCounts)

	switch {
	case flush && straight:
		return StraightFlush
	case hasMultiplicity(rankCounts, 4):
		return FourOfAKind
	case hasMultiplicity(rankCounts, 3) && hasMultiplicity(rankCounts, 2):
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case hasMultiplicity(rankCounts, 3):
		return ThreeOfAKind
	case countMultiplicity(rankCounts, 2) == 2:
		return TwoPair
	case hasMultiplicity(rankCounts, 2):
		return OnePair
	default:
		return HighCard
	}
}

func hasMultiplicity(rankCounts [cards.NumRanks]int, n int) bool {
	for _, c := range rankCounts {
		if c == n {
			return true
		}
	}
	return false
}

func countMultiplicity(rankCounts [cards.NumRanks]int, n int) int {
	count := 0
	for _, c := range rankCounts {
		if c == n {
			count++
		}
	}
	return count
}

// isStraight reports whether the rank histogram forms five distinct,
// consecutive ranks, including the A-2-3-4-5 wheel. No 6-card
// wrap-around is possible since this is always called on exactly 5
// cards, so at most one straight window can match.
func isStraight(rankCounts [cards.NumRanks]int) bool {
	distinct := 0
	for _, c := range rankCounts {
		if c > 1 {
			return false
		}
		if c == 1 {
			distinct++
		}
	}
	if distinct != 5 {
		return false
	}

	// Wheel: A,2,3,4,5 — Ace counted low.
	if rankCounts[cards.Ace] == 1 && rankCounts[cards.Two] == 1 &&
		rankCounts[cards.Three] == 1 && rankCounts[cards.Four] == 1 &&
		rankCounts[cards.Five] == 1 {
		return true
	}

	lo, hi := -1, -1
	for r, c := range rankCounts {
		if c == 1 {
			if lo == -1 {
				lo = r
			}
			hi = r
		}
	}
	return hi-lo == 4
}
