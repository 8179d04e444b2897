package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/pokercore/internal/cards"
)

func hand5(s string) [5]cards.Card {
	parsed, err := cards.ParseAll(s)
	if err != nil {
		panic(err)
	}
	var out [5]cards.Card
	copy(out[:], parsed)
	return out
}

func TestClassifyWitnesses(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		hand string
		want Category
	}{
		{"royal is straight flush", "ASKSQSJSTS", StraightFlush},
		{"low straight flush (wheel)", "5S4S3S2SAS", StraightFlush},
		{"four of a kind", "7H7C7S7D2C", FourOfAKind},
		{"full house", "7H7C7SKDKC", FullHouse},
		{"flush", "2S5S9SJSKS", Flush},
		{"ace high straight", "TSJHQDKCAS", Straight},
		{"three of a kind", "7H7C7S2D9C", ThreeOfAKind},
		{"two pair", "7H7CKDKC2S", TwoPair},
		{"one pair", "7H7C2D9C4S", OnePair},
		{"high card", "2S5H9DJCKS", HighCard},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Classify(hand5(tc.hand))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassifyWheelStraightUnsuited(t *testing.T) {
	t.Parallel()
	got := Classify(hand5("AS2C3D4H5S"))
	assert.Equal(t, Straight, got)
}

func TestClassifyIsPermutationInvariant(t *testing.T) {
	t.Parallel()
	a := hand5("7H7C7S7D2C")
	b := [5]cards.Card{a[4], a[3], a[2], a[1], a[0]}
	assert.Equal(t, Classify(a), Classify(b))
}

func TestClassifyNoWrapAroundStraight(t *testing.T) {
	t.Parallel()
	// Q,K,A,2,3 is not a straight: no wrap-around recognized.
	got := Classify(hand5("QSKSAS2S3S"))
	assert.Equal(t, Flush, got)
}
