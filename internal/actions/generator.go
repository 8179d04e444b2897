// Package actions implements the legal action generator: the 21
// PLAY combinations of a 7-card hand, and the k-worst-cards DISCARD
// templates the heuristic policy ranks by default. A small, explicit
// option set is built directly rather than via a generic search, as
// pure functions with no RNG dependency.
package actions

// PlayCandidate is one of the C(7,5)=21 distinct 5-card subsets of a
// 7-card hand, given as hand indices in ascending order.
type PlayCandidate struct {
	Indices [5]int
}

// PlayCandidates enumerates every 5-of-7 index subset in
// lexicographic order, which doubles as the deterministic tie-break
// the policy's final rule needs: lowest index set wins ties "for free".
func PlayCandidates(handLen int) []PlayCandidate {
	var out []PlayCandidate
	var combo [5]int
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == 5 {
			out = append(out, PlayCandidate{Indices: combo})
			return
		}
		for i := start; i < handLen; i++ {
			combo[depth] = i
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
	return out
}

// DiscardCandidate is a discard template: the indices of the k "worst"
// cards as ranked by an externally supplied ordering (internal/policy
// owns what "worst" means). k=0 is included — it is not itself a legal
// action, but representing "do not discard" lets the policy ranking
// compare it against real candidates.
type DiscardCandidate struct {
	K       int
	Indices []int
}

// DiscardTemplates returns the k in {0,1,2,3} "discard the k worst"
// templates, where worstFirst is a hand-index ordering from most to
// least discardable (as produced by the heuristic policy). Templates
// with k greater than dRemaining or len(worstFirst) are omitted since
// they could never be legal.
func DiscardTemplates(worstFirst []int, dRemaining int) []DiscardCandidate {
	maxK := 3
	if len(worstFirst) < maxK {
		maxK = len(worstFirst)
	}
	if dRemaining < maxK {
		maxK = dRemaining
	}

	out := make([]DiscardCandidate, 0, maxK+1)
	for k := 0; k <= maxK; k++ {
		indices := append([]int(nil), worstFirst[:k]...)
		out = append(out, DiscardCandidate{K: k, Indices: indices})
	}
	return out
}

// FullDiscardEnumeration returns every legal discard subset (1..n,
// capped by dRemaining) of a hand of the given length. This is an
// exhaustive-search alternative to the k-worst templates; it is
// not used by the default heuristic policy because of its
// combinatorial size.
func FullDiscardEnumeration(handLen, dRemaining int) []DiscardCandidate {
	maxN := handLen
	if dRemaining < maxN {
		maxN = dRemaining
	}

	var out []DiscardCandidate
	for n := 1; n <= maxN; n++ {
		var combo []int
		var rec func(start int)
		rec = func(start int) {
			if len(combo) == n {
				cp := append([]int(nil), combo...)
				out = append(out, DiscardCandidate{K: n, Indices: cp})
				return
			}
			for i := start; i < handLen; i++ {
				combo = append(combo, i)
				rec(i + 1)
				combo = combo[:len(combo)-1]
			}
		}
		rec(0)
	}
	return out
}
