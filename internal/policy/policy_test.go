package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokercore/internal/cards"
	"github.com/lox/pokercore/internal/classify"
	"github.com/lox/pokercore/internal/engine"
)

func samplePublicState(handStr string, pRemaining, dRemaining int) engine.PublicState {
	hand, err := cards.ParseAll(handStr)
	if err != nil {
		panic(err)
	}
	full := cards.FullDeck()
	used := make(map[string]bool, len(hand))
	for _, c := range hand {
		used[c.String()] = true
	}
	var remaining []cards.Card
	for _, c := range full {
		if !used[c.String()] {
			remaining = append(remaining, c)
		}
	}
	return engine.PublicState{
		Hand:                hand,
		PRemaining:          pRemaining,
		DRemaining:          dRemaining,
		DeckRemainingCount:  len(remaining),
		DeckRemainingCounts: cards.CountRemaining(remaining),
	}
}

func TestHintRecommendsPlayingFourOfAKind(t *testing.T) {
	t.Parallel()

	pub := samplePublicState("7H7C7S7D2C3C4C", 4, 10)
	rec := Hint(pub)

	require.Equal(t, engine.Play, rec.Action.Type)
	var selected [5]cards.Card
	for i, idx := range rec.Action.Indices {
		selected[i] = pub.Hand[idx]
	}
	assert.Equal(t, classify.FourOfAKind, classify.Classify(selected))
}

func TestHintIsPureFunctionOfPublicState(t *testing.T) {
	t.Parallel()

	pubA := samplePublicState("2S5H9DJCKS3C4C", 4, 10)
	pubB := pubA
	pubB.Hand = append([]cards.Card(nil), pubA.Hand...)

	recA := Hint(pubA)
	recB := Hint(pubB)
	assert.Equal(t, recA.Action, recB.Action)
	assert.Equal(t, recA.ExpectedValue, recB.ExpectedValue)
}

func TestHintMustPlayWhenOnlyOnePlayRemains(t *testing.T) {
	t.Parallel()

	pub := samplePublicState("2S5H9DJCKS3C4C", 1, 10)
	rec := Hint(pub)
	assert.Equal(t, engine.Play, rec.Action.Type)
}

func TestTraceTerminatesAndCompletesAllPlays(t *testing.T) {
	t.Parallel()

	pub := samplePublicState("2S5H9DJCKS3C4C", 4, 10)
	steps := Trace(pub)

	plays := 0
	for _, s := range steps {
		if s.Action.Type == engine.Play {
			plays++
		}
	}
	require.Equal(t, 4, plays)
}

func TestDiscardTemplatesNeverExceedBudget(t *testing.T) {
	t.Parallel()
	pub := samplePublicState("2S5H9DJCKS3C4C", 4, 1)
	rec := Hint(pub)
	if rec.Action.Type == engine.Discard {
		assert.LessOrEqual(t, len(rec.Action.Indices), 1)
	}
}
