package calibration

import (
	"github.com/lox/pokercore/internal/engine"
	"github.com/lox/pokercore/internal/policy"
)

// InfoSetOrderUnknown is the only tag stage 3 ever stamps on a trace
// outcome. A trace artifact missing this tag is a contract violation
// the runtime trace server must reject.
const InfoSetOrderUnknown = "order_unknown"

// RunTraceGate reruns the heuristic policy end-to-end under strict
// order-unknown constraints — policy.Trace never sees the ordered
// deck, only the counts projection — and reports whether the seed is
// fit for its assigned tier's runtime pool.
//
// For practice seeds, completion with no validation error is
// sufficient. For challenge seeds, the trace's realized score (the
// engine's gameplay score_total after the trace's actions are applied
// against the real ordered deck) must also meet targetScore.
func RunTraceGate(seed uint64, mode engine.Mode, tier string, targetScore *int) TraceOutcome {
	state, _ := engine.Start(seed, mode, tier, targetScore)

	steps := policy.Trace(state.PublicView())

	current := state
	for _, step := range steps {
		next, _, err := engine.Apply(current, step.Action)
		if err != nil {
			return TraceOutcome{
				Seed:          seed,
				Tier:          tier,
				InfoSet:       InfoSetOrderUnknown,
				StepsExecuted: step.StepIndex,
				Passed:        false,
				FailureReason: err.MessageKey,
			}
		}
		current = next
	}
	realized := current.PublicView().ScoreTotal

	if !current.IsTerminal() {
		return TraceOutcome{
			Seed:          seed,
			Tier:          tier,
			InfoSet:       InfoSetOrderUnknown,
			StepsExecuted: len(steps),
			RealizedScore: realized,
			Passed:        false,
			FailureReason: "trace_did_not_reach_terminal",
		}
	}

	if mode == engine.Challenge && targetScore != nil && realized < *targetScore {
		return TraceOutcome{
			Seed:          seed,
			Tier:          tier,
			InfoSet:       InfoSetOrderUnknown,
			StepsExecuted: len(steps),
			RealizedScore: realized,
			Passed:        false,
			FailureReason: "feasibility_floor_not_met",
		}
	}

	return TraceOutcome{
		Seed:          seed,
		Tier:          tier,
		InfoSet:       InfoSetOrderUnknown,
		StepsExecuted: len(steps),
		RealizedScore: realized,
		Passed:        true,
	}
}
