package calibration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageAReachesTerminalAndAccumulatesScore(t *testing.T) {
	t.Parallel()

	final, score := StageA(101)
	require.True(t, final.IsTerminal())
	assert.GreaterOrEqual(t, score, 0)
}

func TestStageADeterministic(t *testing.T) {
	t.Parallel()

	final1, score1 := StageA(202)
	final2, score2 := StageA(202)

	assert.Equal(t, score1, score2)
	assert.Equal(t, final1.PublicView(), final2.PublicView())
}
