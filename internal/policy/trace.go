package policy

import (
	"sort"

	"github.com/lox/pokercore/internal/cards"
	"github.com/lox/pokercore/internal/classify"
	"github.com/lox/pokercore/internal/engine"
	"github.com/lox/pokercore/internal/scoring"
)

// Step is one decision in an ai_trace: the recommendation that would
// have been made at that point, plus the step index it occupies.
type Step struct {
	StepIndex      int
	Action         engine.Action
	ExplanationKey string
	Params         map[string]any
}

// Trace repeatedly applies Hint's chosen action to a hypothetical
// rollout of pub, terminating when no plays remain. Because draw order
// is unknown, every draw is resolved to the single most probable
// remaining card under the current counts projection — this is a
// projection for UI reveal and the trace-gate input, never a
// prediction of the real deck.
func Trace(pub engine.PublicState) []Step {
	current := pub
	var steps []Step

	for stepIndex := 0; current.PRemaining > 0; stepIndex++ {
		rec := Hint(current)
		steps = append(steps, Step{
			StepIndex:      stepIndex,
			Action:         rec.Action,
			ExplanationKey: rec.ExplanationKey,
			Params:         rec.Params,
		})
		current = projectApply(current, rec.Action)
	}
	return steps
}

// projectApply advances a PublicState by one action using expected
// (most-probable) draws rather than a real ordered deck.
func projectApply(pub engine.PublicState, action engine.Action) engine.PublicState {
	switch action.Type {
	case engine.Play:
		var selected [5]cards.Card
		for i, idx := range action.Indices {
			selected[i] = pub.Hand[idx]
		}
		category := classify.Classify(selected)
		retained := removeIndices(pub.Hand, action.Indices)
		drawn, counts, deckCount := projectedDraw(pub.DeckRemainingCounts, pub.DeckRemainingCount, 5)

		return engine.PublicState{
			Hand:                append(retained, drawn...),
			PRemaining:          pub.PRemaining - 1,
			DRemaining:          pub.DRemaining,
			ScoreTotal:          pub.ScoreTotal + scoring.ModelPoints(category),
			DeckRemainingCount:  deckCount,
			DeckRemainingCounts: counts,
		}
	case engine.Discard:
		n := len(action.Indices)
		retained := removeIndices(pub.Hand, action.Indices)
		drawn, counts, deckCount := projectedDraw(pub.DeckRemainingCounts, pub.DeckRemainingCount, n)

		return engine.PublicState{
			Hand:                append(retained, drawn...),
			PRemaining:          pub.PRemaining,
			DRemaining:          pub.DRemaining - n,
			ScoreTotal:          pub.ScoreTotal,
			DeckRemainingCount:  deckCount,
			DeckRemainingCounts: counts,
		}
	default:
		return pub
	}
}

// projectedDraw deterministically resolves n draws against a counts
// projection by always taking the currently most-probable remaining
// card (canonical order breaks ties), never consulting an ordered
// deck.
func projectedDraw(counts cards.Counts, deckCount int, n int) ([]cards.Card, cards.Counts, int) {
	working := make(cards.Counts, len(counts))
	for k, v := range counts {
		working[k] = v
	}
	keys := cards.CanonicalKeys()

	drawn := make([]cards.Card, 0, n)
	for i := 0; i < n; i++ {
		type entry struct {
			key   string
			count int
		}
		var candidates []entry
		for _, k := range keys {
			if c := working[k]; c > 0 {
				candidates = append(candidates, entry{k, c})
			}
		}
		if len(candidates) == 0 {
			break
		}
		sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].count > candidates[j].count })
		top := candidates[0]

		working[top.key]--
		if working[top.key] == 0 {
			delete(working, top.key)
		}
		card, _ := cards.Parse(top.key)
		drawn = append(drawn, card)
		deckCount--
	}
	return drawn, working, deckCount
}
