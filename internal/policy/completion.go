package policy

import (
	"sort"

	"github.com/lox/pokercore/internal/actions"
	"github.com/lox/pokercore/internal/cards"
	"github.com/lox/pokercore/internal/classify"
	"github.com/lox/pokercore/internal/scoring"
)

// topMCompletions bounds the number of individually-simulated draws in
// the DISCARD expected-value surrogate.
const topMCompletions = 5

// bestFiveModelScore returns the highest model score achievable from
// any 5-card subset of hand. Used both to score the k=0 "keep as is"
// template and as the per-completion payoff in discardEV.
func bestFiveModelScore(hand []cards.Card) int {
	best := 0
	for _, pc := range actions.PlayCandidates(len(hand)) {
		var selected [5]cards.Card
		for i, idx := range pc.Indices {
			selected[i] = hand[idx]
		}
		score := scoring.ModelPoints(classify.Classify(selected))
		if score > best {
			best = score
		}
	}
	return best
}

// discardEV computes the expected-value surrogate for discarding the
// given hand indices: the best achievable model category
// over the top-M most-promising single-card completions of the
// retained hand, weighted by their probability under the remaining
// multiset, plus a baseline average for every other possible draw.
//
// Simplification, recorded here rather than buried in code review: a
// DISCARD of k cards really draws k replacements, but enumerating
// joint k-card completions is combinatorially unnecessary for a
// ranking heuristic — the single highest-impact replacement card
// dominates the signal (it is the one that completes a pair, straight
// or flush draw), so each candidate completion substitutes exactly one
// card into the retained hand. The other k-1 draws are folded into the
// baseline term along with every uninteresting single-card draw.
func discardEV(hand []cards.Card, discardIdx []int, counts cards.Counts, deckRemainingCount int) (ev, variance float64) {
	if len(discardIdx) == 0 {
		score := float64(bestFiveModelScore(hand))
		return score, 0
	}

	retained := removeIndices(hand, discardIdx)
	if deckRemainingCount == 0 {
		return float64(bestFiveModelScore(retained)), 0
	}

	type outcome struct {
		card cards.Card
		prob float64
		ev   float64
	}
	outcomes := make([]outcome, 0, len(counts))
	for _, key := range cards.CanonicalKeys() {
		n, ok := counts[key]
		if !ok || n == 0 {
			continue
		}
		card, err := cards.Parse(key)
		if err != nil {
			continue
		}
		prob := float64(n) / float64(deckRemainingCount)
		score := float64(bestFiveModelScore(append(append([]cards.Card(nil), retained...), card)))
		outcomes = append(outcomes, outcome{card: card, prob: prob, ev: score})
	}

	sort.SliceStable(outcomes, func(i, j int) bool { return outcomes[i].ev > outcomes[j].ev })

	m := topMCompletions
	if m > len(outcomes) {
		m = len(outcomes)
	}
	impactful := outcomes[:m]
	rest := outcomes[m:]

	var weightedEV float64
	for _, o := range impactful {
		weightedEV += o.prob * o.ev
	}

	var restProb, restWeighted float64
	for _, o := range rest {
		restProb += o.prob
		restWeighted += o.prob * o.ev
	}
	baselineAvg := 0.0
	if restProb > 0 {
		baselineAvg = restWeighted / restProb
	}

	ev = weightedEV + restProb*baselineAvg

	varSum := 0.0
	for _, o := range impactful {
		d := o.ev - ev
		varSum += o.prob * d * d
	}
	if restProb > 0 {
		d := baselineAvg - ev
		varSum += restProb * d * d
	}
	return ev, varSum
}

func removeIndices(hand []cards.Card, indices []int) []cards.Card {
	drop := make(map[int]bool, len(indices))
	for _, idx := range indices {
		drop[idx] = true
	}
	out := make([]cards.Card, 0, len(hand)-len(indices))
	for i, c := range hand {
		if !drop[i] {
			out = append(out, c)
		}
	}
	return out
}

// worstFirst ranks hand indices from most to least discardable using a
// cheap keepability score: paired ranks, same-suit flush potential and
// straight-run proximity all raise a card's keep score; lower keep
// score sorts first (most discardable).
func worstFirst(hand []cards.Card) []int {
	var rankCount [cards.NumRanks]int
	var suitCount [cards.NumSuits]int
	for _, c := range hand {
		rankCount[c.Rank]++
		suitCount[c.Suit]++
	}

	keepScore := func(c cards.Card) float64 {
		score := 0.0
		if rankCount[c.Rank] >= 2 {
			score += 10 * float64(rankCount[c.Rank])
		}
		if suitCount[c.Suit] >= 3 {
			score += 6
		}
		score += straightProximity(rankCount, c.Rank)
		score += float64(c.Rank) * 0.01
		return score
	}

	indices := make([]int, len(hand))
	for i := range hand {
		indices[i] = i
	}
	sort.SliceStable(indices, func(i, j int) bool {
		return keepScore(hand[indices[i]]) < keepScore(hand[indices[j]])
	})
	return indices
}

// straightProximity counts how many distinct ranks already in hand
// fall within a 4-rank window around r (either side), a cheap proxy
// for "keeping this card helps build a straight".
func straightProximity(rankCount [cards.NumRanks]int, r cards.Rank) float64 {
	count := 0
	for delta := -4; delta <= 4; delta++ {
		if delta == 0 {
			continue
		}
		idx := int(r) + delta
		if idx < 0 || idx >= cards.NumRanks {
			continue
		}
		if rankCount[idx] > 0 {
			count++
		}
	}
	return float64(count) * 1.5
}
