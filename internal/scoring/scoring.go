// Package scoring holds the two fixed category->points maps: the
// authoritative gameplay table and the model table used only by
// policy and calibration metrics to avoid jackpot outliers distorting
// statistics. Neither table is ever mutated at runtime.
package scoring

import "github.com/lox/pokercore/internal/classify"

// Gameplay is the authoritative scoring table applied to every PLAY
// transition in the rules engine.
var Gameplay = map[classify.Category]int{
	classify.HighCard:      50,
	classify.OnePair:       70,
	classify.TwoPair:       150,
	classify.ThreeOfAKind:  250,
	classify.Straight:      300,
	classify.Flush:         360,
	classify.FullHouse:     440,
	classify.FourOfAKind:   730,
	classify.StraightFlush: 999999,
}

// Model is the scoring table used exclusively inside the heuristic
// policy, the rollout evaluator, and calibration. It
// collapses the STRAIGHT_FLUSH jackpot into FLUSH so a single rare
// outcome cannot dominate expected-value comparisons or tier
// quantiles.
var Model = map[classify.Category]int{
	classify.HighCard:      50,
	classify.OnePair:       70,
	classify.TwoPair:       150,
	classify.ThreeOfAKind:  250,
	classify.Straight:      300,
	classify.Flush:         360,
	classify.FullHouse:     440,
	classify.FourOfAKind:   730,
	classify.StraightFlush: 360,
}

// GameplayPoints returns the authoritative points for a classified category.
func GameplayPoints(c classify.Category) int {
	return Gameplay[c]
}

// ModelPoints returns the policy/calibration points for a classified category.
func ModelPoints(c classify.Category) int {
	return Model[c]
}
