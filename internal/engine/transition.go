package engine

import (
	"github.com/lox/pokercore/internal/cards"
	"github.com/lox/pokercore/internal/classify"
	"github.com/lox/pokercore/internal/rng"
	"github.com/lox/pokercore/internal/scoring"
)

// Core parameters: hand size, play budget, discard budget.
const (
	HandSize     = 7
	PlayBudget   = 4
	DiscardBudget = 10
)

// Start constructs the initial GameState for a seed, dealing the first
// seven cards and setting budgets. targetScore is only consulted in
// Challenge mode; there a nil targetScore means the final PLAY emits
// neither game.passed nor game.failed.
func Start(seed uint64, mode Mode, tier string, targetScore *int) (*GameState, []Event) {
	deck := rng.Shuffle(seed)

	state := &GameState{
		seed:        seed,
		mode:        mode,
		tier:        tier,
		hand:        append([]cards.Card(nil), deck[:HandSize]...),
		deck:        append([]cards.Card(nil), deck[HandSize:]...),
		pRemaining:  PlayBudget,
		dRemaining:  DiscardBudget,
		targetScore: targetScore,
	}

	events := []Event{newEvent(EventGameStarted, map[string]any{
		"seed": seed,
		"mode": mode.String(),
		"tier": tier,
	})}
	return state, events
}

// Apply validates and applies a single action. On validation failure
// the returned state is the unmodified input — s is never mutated, and
// s itself is safe to keep using.
func Apply(s *GameState, action Action) (*GameState, []Event, *CoreError) {
	if s.pRemaining == 0 {
		return s, nil, newError(ErrGameAlreadyEnded, nil)
	}

	switch action.Type {
	case Play:
		return applyPlay(s, action)
	case Discard:
		return applyDiscard(s, action)
	default:
		return s, nil, newError(ErrInvalidActionShape, map[string]any{"type": int(action.Type)})
	}
}

func applyPlay(s *GameState, action Action) (*GameState, []Event, *CoreError) {
	if len(action.Indices) != 5 {
		return s, nil, newError(ErrPlayRequiresFive, map[string]any{"count": len(action.Indices)})
	}
	if err := validateIndices(action.Indices, len(s.hand)); err != nil {
		return s, nil, err
	}

	next := s.clone()

	var selected [5]cards.Card
	for i, idx := range action.Indices {
		selected[i] = next.hand[idx]
	}
	category := classify.Classify(selected)
	points := scoring.GameplayPoints(category)

	next.hand = removeIndices(next.hand, action.Indices)
	drawn, deck := draw(next.deck, 5)
	next.deck = deck
	next.hand = append(next.hand, drawn...)
	next.pRemaining--
	next.scoreTotal += points
	next.history = append(next.history, action)

	events := []Event{newEvent(EventPlayScored, map[string]any{
		"category": category.String(),
		"points":   points,
	})}

	if next.pRemaining == 0 {
		events = append(events, newEvent(EventGameEnded, nil))
		if next.mode == Challenge && next.targetScore != nil {
			if next.scoreTotal >= *next.targetScore {
				events = append(events, newEvent(EventGamePassed, map[string]any{
					"score_total":  next.scoreTotal,
					"target_score": *next.targetScore,
				}))
			} else {
				events = append(events, newEvent(EventGameFailed, map[string]any{
					"score_total":  next.scoreTotal,
					"target_score": *next.targetScore,
				}))
			}
		}
	}

	return next, events, nil
}

func applyDiscard(s *GameState, action Action) (*GameState, []Event, *CoreError) {
	n := len(action.Indices)
	maxBySize := len(s.hand)
	if n < 1 || n > maxBySize {
		return s, nil, newError(ErrDiscardSizeInvalid, map[string]any{
			"count": n, "hand_size": maxBySize,
		})
	}
	if n > s.dRemaining {
		return s, nil, newError(ErrDiscardBudgetExceed, map[string]any{
			"count": n, "d_remaining": s.dRemaining,
		})
	}
	if err := validateIndices(action.Indices, len(s.hand)); err != nil {
		return s, nil, err
	}

	next := s.clone()
	next.hand = removeIndices(next.hand, action.Indices)
	drawn, deck := draw(next.deck, n)
	next.deck = deck
	next.hand = append(next.hand, drawn...)
	next.dRemaining -= n
	next.history = append(next.history, action)

	events := []Event{newEvent(EventDiscardPerformed, map[string]any{"count": n})}
	return next, events, nil
}

// validateIndices checks range before uniqueness: out-of-range errors
// take priority over not-unique errors.
func validateIndices(indices []int, handLen int) *CoreError {
	for _, idx := range indices {
		if idx < 0 || idx >= handLen {
			return newError(ErrIndicesOutOfRange, map[string]any{"index": idx, "hand_len": handLen})
		}
	}
	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if seen[idx] {
			return newError(ErrIndicesNotUnique, map[string]any{"index": idx})
		}
		seen[idx] = true
	}
	return nil
}

// removeIndices returns hand with the given (already-validated,
// distinct, in-range) indices removed, preserving relative order of
// the remaining cards.
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

// draw removes up to n cards from the front of deck and returns them
// along with the shortened deck. If the deck has fewer than n cards,
// it is drained entirely.
func draw(deck []cards.Card, n int) (drawn []cards.Card, remaining []cards.Card) {
	if n > len(deck) {
		n = len(deck)
	}
	drawn = append([]cards.Card(nil), deck[:n]...)
	remaining = append([]cards.Card(nil), deck[n:]...)
	return drawn, remaining
}
