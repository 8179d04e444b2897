package calibration

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/pokercore/internal/engine"
)

func TestRunTraceGatePracticeSeedPasses(t *testing.T) {
	t.Parallel()

	outcome := RunTraceGate(303, engine.Practice, TierMedium, nil)

	assert.True(t, outcome.Passed)
	assert.Equal(t, InfoSetOrderUnknown, outcome.InfoSet)
	assert.Empty(t, outcome.FailureReason)
}

func TestRunTraceGateChallengeFeasibilityFloor(t *testing.T) {
	t.Parallel()

	_, score := StageA(303)
	unreachable := score + 1_000_000

	outcome := RunTraceGate(303, engine.Challenge, TierHard, &unreachable)

	assert.False(t, outcome.Passed)
	assert.Equal(t, "feasibility_floor_not_met", outcome.FailureReason)
}
