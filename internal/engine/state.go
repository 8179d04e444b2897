package engine

import (
	"github.com/lox/pokercore/internal/cards"
	"github.com/lox/pokercore/internal/infoset"
)

// GameState is the authoritative, single-session state. The zero
// value is not valid; always obtain one from Start or Jump. GameState
// is treated as an immutable value from the
// outside: Apply never mutates its receiver, it returns a new state.
type GameState struct {
	seed uint64
	mode Mode
	tier string

	hand []cards.Card
	deck []cards.Card // ordered remaining deck suffix; private

	pRemaining  int
	dRemaining  int
	scoreTotal  int
	targetScore *int

	history []Action
}

// clone returns a deep-enough copy for copy-on-write transitions: hand,
// deck and history get fresh backing arrays so mutating the clone can
// never be observed through the original.
func (s *GameState) clone() *GameState {
	next := *s
	next.hand = append([]cards.Card(nil), s.hand...)
	next.deck = append([]cards.Card(nil), s.deck...)
	next.history = append([]Action(nil), s.history...)
	return &next
}

// Seed returns the originating seed, needed by callers that replay via Jump.
func (s *GameState) Seed() uint64 { return s.seed }

// Mode returns the session mode.
func (s *GameState) Mode() Mode { return s.mode }

// Tier returns the session's difficulty tier label.
func (s *GameState) Tier() string { return s.tier }

// History returns a copy of the applied action log.
func (s *GameState) History() []Action {
	return append([]Action(nil), s.history...)
}

// IsTerminal reports whether no further PLAY/DISCARD is legal.
func (s *GameState) IsTerminal() bool { return s.pRemaining == 0 }

// PublicState is the order-unknown projection of GameState exposed to
// the heuristic policy and the HTTP adapter.
type PublicState struct {
	Hand                []cards.Card
	PRemaining          int
	DRemaining          int
	ScoreTotal          int
	DeckRemainingCount  int
	DeckRemainingCounts cards.Counts
}

// PublicView projects the order-unknown information set. This is the
// only view internal/policy is ever allowed to see.
func (s *GameState) PublicView() PublicState {
	return PublicState{
		Hand:                append([]cards.Card(nil), s.hand...),
		PRemaining:          s.pRemaining,
		DRemaining:          s.dRemaining,
		ScoreTotal:          s.scoreTotal,
		DeckRemainingCount:  len(s.deck),
		DeckRemainingCounts: cards.CountRemaining(s.deck),
	}
}

// PrivilegedView exposes the ordered remaining deck. It panics unless
// ctx proves calibration privilege: this is the one seam where the
// ordered-deck information set is allowed to leak, and it is gated at
// the call site rather than by convention.
func (s *GameState) PrivilegedView(ctx infoset.Context) []cards.Card {
	infoset.RequireCalibration(ctx)
	return append([]cards.Card(nil), s.deck...)
}

// TargetScore returns the target score the state was started with, or
// nil if none was given.
func (s *GameState) TargetScore() *int { return s.targetScore }
