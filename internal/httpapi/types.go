package httpapi

import (
	"bytes"
	"fmt"

	"github.com/lox/pokercore/internal/cards"
	"github.com/lox/pokercore/internal/engine"
)

// orderedCounts marshals a cards.Counts multiset as a JSON object whose
// keys appear in canonical deck order (rank-major 2..A, suit S,H,D,C)
// rather than encoding/json's default alphabetical map-key order.
// Canonical order is part of the external contract: regression tests
// depend on byte-identical serialization, and alphabetical order would
// otherwise leak information about which cards cluster by rank versus
// suit. Only present (non-zero) keys are emitted.
type orderedCounts cards.Counts

func (o orderedCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, key := range cards.CanonicalKeys() {
		n, ok := o[key]
		if !ok || n == 0 {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		fmt.Fprintf(&buf, "%q:%d", key, n)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// publicStateDTO is the wire shape of engine.PublicState, matching the
// external contract's canonical field names.
type publicStateDTO struct {
	Hand                []string      `json:"hand"`
	PRemaining          int           `json:"p_remaining"`
	DRemaining          int           `json:"d_remaining"`
	ScoreTotal          int           `json:"score_total"`
	DeckRemainingCount  int           `json:"deck_remaining_count"`
	DeckRemainingCounts orderedCounts `json:"deck_remaining_counts"`
}

// eventDTO mirrors engine.Event's data-not-prose shape.
type eventDTO struct {
	Type       string         `json:"type"`
	MessageKey string         `json:"message_key"`
	Params     map[string]any `json:"params,omitempty"`
}

// policyDTO reports a session's hint/jump budget policy.
type policyDTO struct {
	Policy         string `json:"policy"`
	BudgetTotal    int    `json:"budget_total,omitempty"`
	BudgetRemaining int   `json:"budget_remaining,omitempty"`
}

type startRequest struct {
	Mode string  `json:"mode"`
	Tier string  `json:"tier"`
	Seed *uint64 `json:"seed,omitempty"`
}

type startResponse struct {
	GameID      string         `json:"game_id"`
	PublicState publicStateDTO `json:"public_state"`
	Events      []eventDTO     `json:"events"`
	HintPolicy  policyDTO      `json:"hint_policy"`
	JumpPolicy  policyDTO      `json:"jump_policy"`
}

type actionDTO struct {
	Type            string `json:"type"`
	SelectedIndices []int  `json:"selected_indices"`
}

type stepRequest struct {
	GameID string    `json:"game_id"`
	Action actionDTO `json:"action"`
}

type stepResponse struct {
	PublicState publicStateDTO `json:"public_state"`
	Events      []eventDTO     `json:"events"`
}

type jumpRequest struct {
	GameID string `json:"game_id"`
	K      int    `json:"k"`
}

type jumpResponse struct {
	PublicState publicStateDTO `json:"public_state"`
}

type traceStepDTO struct {
	StepIndex      int            `json:"step_index"`
	Action         actionDTO      `json:"action"`
	ExplanationKey string         `json:"explanation_key"`
	Params         map[string]any `json:"params,omitempty"`
}

type traceResponse struct {
	Seed    uint64         `json:"seed"`
	Policy  string         `json:"policy"`
	InfoSet string         `json:"info_set"`
	Steps   []traceStepDTO `json:"steps"`
}

type errorResponse struct {
	MessageKey string         `json:"message_key"`
	Params     map[string]any `json:"params,omitempty"`
}

func toPublicStateDTO(pub engine.PublicState) publicStateDTO {
	hand := make([]string, len(pub.Hand))
	for i, c := range pub.Hand {
		hand[i] = c.String()
	}
	return publicStateDTO{
		Hand:                hand,
		PRemaining:          pub.PRemaining,
		DRemaining:          pub.DRemaining,
		ScoreTotal:          pub.ScoreTotal,
		DeckRemainingCount:  pub.DeckRemainingCount,
		DeckRemainingCounts: orderedCounts(pub.DeckRemainingCounts),
	}
}

func toEventDTOs(events []engine.Event) []eventDTO {
	out := make([]eventDTO, len(events))
	for i, e := range events {
		out[i] = eventDTO{Type: e.Type, MessageKey: e.MessageKey, Params: e.Params}
	}
	return out
}

func toAction(dto actionDTO) engine.Action {
	if dto.Type == "DISCARD" {
		return engine.NewDiscard(dto.SelectedIndices...)
	}
	return engine.NewPlay(dto.SelectedIndices...)
}
