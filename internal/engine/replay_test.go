package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJumpEqualsLiveStepping(t *testing.T) {
	t.Parallel()

	const seed = uint64(42)
	state, _ := Start(seed, Practice, "medium", nil)

	log := []Action{
		NewDiscard(0, 1, 2),
		NewPlay(0, 1, 2, 3, 4),
		NewDiscard(5),
		NewPlay(0, 1, 2, 3, 4),
		NewPlay(0, 1, 2, 3, 4),
		NewPlay(0, 1, 2, 3, 4),
	}

	for _, action := range log {
		var err *CoreError
		state, _, err = Apply(state, action)
		require.Nil(t, err)
	}
	liveScore := state.scoreTotal
	liveHistory := state.History()

	jumped, _, jerr := Jump(seed, Practice, "medium", nil, log, len(log))
	require.Nil(t, jerr)
	assert.Equal(t, liveScore, jumped.scoreTotal)
	assert.Equal(t, liveHistory, jumped.History())
	assert.Equal(t, state.PublicView(), jumped.PublicView())
}

func TestJumpToPartialStep(t *testing.T) {
	t.Parallel()

	const seed = uint64(99)
	full := []Action{
		NewDiscard(0, 1),
		NewPlay(0, 1, 2, 3, 4),
		NewPlay(0, 1, 2, 3, 4),
	}

	// Live-step only the first two actions and compare against Jump(k=2).
	live, _ := Start(seed, Practice, "medium", nil)
	for i := 0; i < 2; i++ {
		var err *CoreError
		live, _, err = Apply(live, full[i])
		require.Nil(t, err)
	}

	jumped, _, jerr := Jump(seed, Practice, "medium", nil, full, 2)
	require.Nil(t, jerr)
	assert.Equal(t, live.PublicView(), jumped.PublicView())
}

func TestJumpRejectsOutOfRangeStep(t *testing.T) {
	t.Parallel()
	_, _, err := Jump(1, Practice, "medium", nil, []Action{NewPlay(0, 1, 2, 3, 4)}, 5)
	require.NotNil(t, err)
	assert.Equal(t, ErrJumpNotAllowed, err.MessageKey)
}

func TestMassConservation(t *testing.T) {
	t.Parallel()

	state, _ := Start(777, Practice, "medium", nil)
	cardsPlayed, cardsDiscarded := 0, 0

	steps := []Action{
		NewDiscard(0, 1, 2),
		NewPlay(0, 1, 2, 3, 4),
		NewDiscard(0),
		NewPlay(0, 1, 2, 3, 4),
	}
	for _, a := range steps {
		var err *CoreError
		state, _, err = Apply(state, a)
		require.Nil(t, err)
		if a.Type == Play {
			cardsPlayed += 5
		} else {
			cardsDiscarded += len(a.Indices)
		}
	}

	pub := state.PublicView()
	total := len(pub.Hand) + cardsPlayed + cardsDiscarded + pub.DeckRemainingCount
	assert.Equal(t, 52, total)
}
