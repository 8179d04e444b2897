package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokercore/internal/cards"
)

// TestFourOfAKindScoringScenario exercises a crafted hand directly:
// {7H,7C,7S,7D,2C,3C,4C}, PLAYing the four 7s plus the
// 2C, must score FOUR_OF_A_KIND for 730 points. The hand is constructed
// directly (rather than searched for by seed) since seed->hand mapping
// is not invertible; internal/rng's own tests cover the shuffle itself.
func TestFourOfAKindScoringScenario(t *testing.T) {
	t.Parallel()

	hand := []cards.Card{
		cards.MustParse("7H"), cards.MustParse("7C"), cards.MustParse("7S"),
		cards.MustParse("7D"), cards.MustParse("2C"), cards.MustParse("3C"),
		cards.MustParse("4C"),
	}
	full := cards.FullDeck()
	used := make(map[string]bool, len(hand))
	for _, c := range hand {
		used[c.String()] = true
	}
	var deck []cards.Card
	for _, c := range full {
		if !used[c.String()] {
			deck = append(deck, c)
		}
	}

	state := &GameState{
		seed:       1,
		mode:       Practice,
		tier:       "easy",
		hand:       hand,
		deck:       deck,
		pRemaining: PlayBudget,
		dRemaining: DiscardBudget,
	}

	next, events, err := Apply(state, NewPlay(0, 1, 2, 3, 4))
	require.Nil(t, err)
	require.Equal(t, 730, next.scoreTotal)

	found := false
	for _, e := range events {
		if e.MessageKey == EventPlayScored {
			assert.Equal(t, "FOUR_OF_A_KIND", e.Params["category"])
			assert.Equal(t, 730, e.Params["points"])
			found = true
		}
	}
	assert.True(t, found)
}
