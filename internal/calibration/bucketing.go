package calibration

import "sort"

// Tier labels assigned by bucketing. Three tiers keeps the manifest
// small while still giving challenge mode a meaningful target-score
// ladder. TierCutoffs and AssignTier are written for exactly these
// three: two cutoffs, three buckets.
const (
	TierEasy   = "easy"
	TierMedium = "medium"
	TierHard   = "hard"
)

var tierOrder = []string{TierEasy, TierMedium, TierHard}

// QuantilePolicyEqualFrequency is the only quantile policy implemented:
// cutoffs are chosen so each tier receives an equal share of seeds,
// rather than splitting the score range into equal-width bands. Scores
// cluster heavily around the median outcome of the heuristic policy, so
// equal-width bands starve the tails; equal-frequency keeps every tier
// populated enough for a meaningful seed pool.
const QuantilePolicyEqualFrequency = "equal_frequency"

// boundaryBandFraction is the half-width of the score band around each
// tier cutoff, as a fraction of the hiCut-loCut span, inside which
// stage 2 refines a seed with ordered-deck rollouts instead of trusting
// the stage-1 score outright.
const boundaryBandFraction = 0.15

// TierCutoffs computes the two score thresholds separating easy/medium
// and medium/hard under equal-frequency quantiles over the supplied
// stage-1 scores.
func TierCutoffs(scores []int) (loCut, hiCut int) {
	sorted := append([]int(nil), scores...)
	sort.Ints(sorted)
	n := len(sorted)
	if n == 0 {
		return 0, 0
	}
	loIdx := n / 3
	hiIdx := (2 * n) / 3
	if loIdx >= n {
		loIdx = n - 1
	}
	if hiIdx >= n {
		hiIdx = n - 1
	}
	return sorted[loIdx], sorted[hiIdx]
}

// AssignTier maps a stage-1 score to a tier label given the two cutoffs
// from TierCutoffs.
func AssignTier(score, loCut, hiCut int) string {
	switch {
	case score < loCut:
		return TierEasy
	case score < hiCut:
		return TierMedium
	default:
		return TierHard
	}
}

// InBoundaryBand reports whether score falls within boundaryBandFraction
// of either cutoff, measured relative to the full [loCut,hiCut] span so
// a degenerate span (all scores identical) never selects every seed.
func InBoundaryBand(score, loCut, hiCut int) bool {
	span := hiCut - loCut
	if span <= 0 {
		return false
	}
	band := int(float64(span) * boundaryBandFraction)
	if band < 1 {
		band = 1
	}
	return abs(score-loCut) <= band || abs(score-hiCut) <= band
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
