package engine

import (
	"github.com/lox/pokercore/internal/cards"
	"github.com/lox/pokercore/internal/infoset"
)

// FromPrivileged constructs a GameState from explicit parts, including
// an arbitrary ordered deck suffix. It exists solely for the rollout
// EV evaluator: a Monte Carlo rollout needs to explore several
// independently reshuffled continuations of the same remaining
// multiset, which Start's seed-to-full-deck contract cannot express.
// ctx must carry calibration privilege — this is the one other seam,
// besides PrivilegedView, where ordered-deck state crosses into
// caller-supplied data.
func FromPrivileged(ctx infoset.Context, mode Mode, tier string, targetScore *int, hand, deck []cards.Card, pRemaining, dRemaining, scoreTotal int, history []Action) *GameState {
	infoset.RequireCalibration(ctx)
	return &GameState{
		mode:        mode,
		tier:        tier,
		targetScore: targetScore,
		hand:        append([]cards.Card(nil), hand...),
		deck:        append([]cards.Card(nil), deck...),
		pRemaining:  pRemaining,
		dRemaining:  dRemaining,
		scoreTotal:  scoreTotal,
		history:     append([]Action(nil), history...),
	}
}
