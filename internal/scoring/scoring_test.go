package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/pokercore/internal/classify"
)

func TestModelTableCollapsesStraightFlushIntoFlush(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Model[classify.Flush], Model[classify.StraightFlush])
	assert.NotEqual(t, Gameplay[classify.Flush], Gameplay[classify.StraightFlush])
}

func TestGameplayTableMatchesContract(t *testing.T) {
	t.Parallel()
	want := map[classify.Category]int{
		classify.HighCard:      50,
		classify.OnePair:       70,
		classify.TwoPair:       150,
		classify.ThreeOfAKind:  250,
		classify.Straight:      300,
		classify.Flush:         360,
		classify.FullHouse:     440,
		classify.FourOfAKind:   730,
		classify.StraightFlush: 999999,
	}
	assert.Equal(t, want, Gameplay)
}
