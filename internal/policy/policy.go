// Package policy implements the order-unknown heuristic policy:
// single-action scoring, ranking with a deterministic tie-break
// ladder, and the ai_hint/ai_trace outputs. Every function here takes
// only an engine.PublicState — never an ordered deck — so the
// information-set boundary is enforced by the type signature itself,
// not by a runtime check. Decision and explanation structs follow an
// AIEngine/AIDecision shape, generalized from betting actions to
// PLAY/DISCARD and from prose reasoning to structured explanation keys:
// events are data, not prose.
package policy

import (
	"sort"

	"github.com/lox/pokercore/internal/actions"
	"github.com/lox/pokercore/internal/cards"
	"github.com/lox/pokercore/internal/classify"
	"github.com/lox/pokercore/internal/engine"
	"github.com/lox/pokercore/internal/scoring"
)

// ExplanationKey is the sole explanation message key the heuristic
// emits; detail lives in Params, never in prose.
const ExplanationKey = "ai.reason.heuristic"

// Recommendation is the ai_hint output: a recommended action plus a
// structured, data-only explanation.
type Recommendation struct {
	Action         engine.Action
	ExpectedValue  float64
	ExplanationKey string
	Params         map[string]any
}

type candidate struct {
	action       engine.Action
	legal        bool
	ev           float64
	variance     float64
	discardCount int
	indexKey     []int
}

// RankedCandidate is one legal action in full ranked order, exposed so
// the rollout EV evaluator can seed its top-K selection from the
// same ranking the runtime hint uses.
type RankedCandidate struct {
	Action engine.Action
	EV     float64
}

// Rank returns every legal candidate action for pub, sorted by the
// tie-break ladder below (best first).
func Rank(pub engine.PublicState) []RankedCandidate {
	candidates := buildCandidates(pub)
	sort.SliceStable(candidates, func(i, j int) bool {
		return less(candidates[i], candidates[j], pub.PRemaining)
	})

	out := make([]RankedCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.legal {
			out = append(out, RankedCandidate{Action: c.action, EV: c.ev})
		}
	}
	return out
}

// Hint ranks every legal candidate action for the given public state
// and returns the winner, by the same tie-break ladder.
func Hint(pub engine.PublicState) Recommendation {
	candidates := buildCandidates(pub)
	best := pickBest(candidates, pub.PRemaining)

	return Recommendation{
		Action:         best.action,
		ExpectedValue:  best.ev,
		ExplanationKey: ExplanationKey,
		Params: map[string]any{
			"rule":                  "highest_model_ev",
			"candidates_considered": len(candidates),
			"discard_count":         best.discardCount,
		},
	}
}

func buildCandidates(pub engine.PublicState) []candidate {
	var out []candidate

	for _, pc := range actions.PlayCandidates(len(pub.Hand)) {
		var selected [5]cards.Card
		for i, idx := range pc.Indices {
			selected[i] = pub.Hand[idx]
		}
		ev := float64(scoring.ModelPoints(classify.Classify(selected)))
		out = append(out, candidate{
			action:   engine.NewPlay(pc.Indices[:]...),
			legal:    true,
			ev:       ev,
			variance: 0,
			indexKey: append([]int(nil), pc.Indices[:]...),
		})
	}

	worst := worstFirst(pub.Hand)
	for _, dc := range actions.DiscardTemplates(worst, pub.DRemaining) {
		ev, variance := discardEV(pub.Hand, dc.Indices, pub.DeckRemainingCounts, pub.DeckRemainingCount)
		out = append(out, candidate{
			action:       engine.NewDiscard(dc.Indices...),
			legal:        dc.K >= 1,
			ev:           ev,
			variance:     variance,
			discardCount: dc.K,
			indexKey:     append([]int(nil), dc.Indices...),
		})
	}

	return out
}

// pickBest applies the tie-break ladder and returns the
// highest-ranked candidate that is actually legal (excludes the k=0
// "do not discard" synthetic entry).
func pickBest(candidates []candidate, pRemaining int) candidate {
	ranked := append([]candidate(nil), candidates...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j], pRemaining)
	})

	for _, c := range ranked {
		if c.legal {
			return c
		}
	}
	// Unreachable in practice: PlayCandidates always yields 21 legal
	// entries, so a legal candidate always exists.
	return ranked[0]
}

// less reports whether a should rank strictly ahead of b.
func less(a, b candidate, pRemaining int) bool {
	if a.ev != b.ev {
		return a.ev > b.ev
	}
	if pRemaining == 1 {
		aPlay := a.action.Type == engine.Play
		bPlay := b.action.Type == engine.Play
		if aPlay != bPlay {
			return aPlay
		}
	} else if a.variance != b.variance {
		return a.variance < b.variance
	}
	if a.discardCount != b.discardCount {
		return a.discardCount < b.discardCount
	}
	return lexLess(a.indexKey, b.indexKey)
}

func lexLess(a, b []int) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
