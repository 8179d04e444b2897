package calibration

import (
	"github.com/lox/pokercore/internal/cards"
	"github.com/lox/pokercore/internal/classify"
	"github.com/lox/pokercore/internal/engine"
	"github.com/lox/pokercore/internal/policy"
	"github.com/lox/pokercore/internal/scoring"
)

// continueHeuristicGame drives state to terminal by repeatedly feeding
// the heuristic policy's chosen action forward, with ordered-deck
// draws actually happening but the policy blinded to them: every Hint
// call only ever sees state.PublicView().
func continueHeuristicGame(state *engine.GameState) (*engine.GameState, int, []engine.Action) {
	modelScore := 0
	for !state.IsTerminal() {
		pub := state.PublicView()
		rec := policy.Hint(pub)

		if rec.Action.Type == engine.Play {
			var selected [5]cards.Card
			for i, idx := range rec.Action.Indices {
				selected[i] = pub.Hand[idx]
			}
			modelScore += scoring.ModelPoints(classify.Classify(selected))
		}

		next, _, err := engine.Apply(state, rec.Action)
		if err != nil {
			// The heuristic only ever emits legal candidates; a failure
			// here indicates a bug in candidate generation, not bad seed
			// data, so stop rather than loop forever.
			break
		}
		state = next
	}
	return state, modelScore, state.History()
}

// StageA runs stage 1 for a single seed: baseline heuristic bucketing
// under practice rules (no target score needed yet — bucketing
// produces the target).
func StageA(seed uint64) (finalState *engine.GameState, modelScore int) {
	final, score, _ := playHeuristicGame(seed, engine.Practice, "", nil)
	return final, score
}
