package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/lox/pokercore/internal/engine"
	"github.com/lox/pokercore/internal/policy"
)

// handleStart creates a new session: picks a seed (explicit or sampled
// from the manifest), starts a fresh GameState, and returns the
// initial public state plus policy budgets.
func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCoreError(w, engine.ErrInvalidActionShape, map[string]any{"detail": err.Error()})
		return
	}

	mode, err := parseMode(req.Mode)
	if err != nil {
		writeCoreError(w, engine.ErrUnknownMode, map[string]any{"mode": req.Mode})
		return
	}

	seed, targetScore, err := s.resolveSeed(mode, req.Tier, req.Seed)
	if err != nil {
		writeCoreError(w, engine.ErrSeedManifestMissing, map[string]any{"mode": req.Mode, "tier": req.Tier})
		return
	}

	state, events := engine.Start(seed, mode, req.Tier, targetScore)
	gameID := s.idGen()

	sess := &session{
		seed:          seed,
		mode:          mode,
		tier:          req.Tier,
		targetScore:   targetScore,
		hintBudget:    s.cfg.Server.HintBudget,
		hintRemaining: s.cfg.Server.HintBudget,
		jumpBudget:    s.cfg.Server.JumpBudget,
		jumpRemaining: s.cfg.Server.JumpBudget,
		state:         state,
	}
	sess.appendEvents(events)
	s.sessions.put(gameID, sess)

	writeJSON(w, http.StatusOK, startResponse{
		GameID:      gameID,
		PublicState: toPublicStateDTO(state.PublicView()),
		Events:      toEventDTOs(events),
		HintPolicy:  budgetPolicy(sess.hintBudget, sess.hintRemaining),
		JumpPolicy:  budgetPolicy(sess.jumpBudget, sess.jumpRemaining),
	})
}

// handleStep applies one action to an existing session.
func (s *Server) handleStep(w http.ResponseWriter, r *http.Request) {
	var req stepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCoreError(w, engine.ErrInvalidActionShape, map[string]any{"detail": err.Error()})
		return
	}

	sess, ok := s.sessions.get(req.GameID)
	if !ok {
		writeCoreError(w, engine.ErrInvalidActionShape, map[string]any{"game_id": req.GameID})
		return
	}

	next, events, coreErr := engine.Apply(sess.state, toAction(req.Action))
	if coreErr != nil {
		writeCoreError(w, coreErr.MessageKey, coreErr.Params)
		return
	}

	sess.state = next
	sess.history = next.History()
	sess.appendEvents(events)

	writeJSON(w, http.StatusOK, stepResponse{
		PublicState: toPublicStateDTO(next.PublicView()),
		Events:      toEventDTOs(events),
	})
}

// handleJump reconstructs a session's state at step k and truncates its
// future history. jump_budget is session bookkeeping, not recovered by
// the replay itself.
func (s *Server) handleJump(w http.ResponseWriter, r *http.Request) {
	var req jumpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCoreError(w, engine.ErrInvalidActionShape, map[string]any{"detail": err.Error()})
		return
	}

	sess, ok := s.sessions.get(req.GameID)
	if !ok {
		writeCoreError(w, engine.ErrInvalidActionShape, map[string]any{"game_id": req.GameID})
		return
	}

	if sess.jumpBudget > 0 && sess.jumpRemaining <= 0 {
		writeCoreError(w, engine.ErrJumpBudgetExhausted, map[string]any{"game_id": req.GameID})
		return
	}

	state, events, coreErr := engine.Jump(sess.seed, sess.mode, sess.tier, sess.targetScore, sess.history, req.K)
	if coreErr != nil {
		writeCoreError(w, coreErr.MessageKey, coreErr.Params)
		return
	}

	sess.state = state
	sess.history = state.History()
	if sess.jumpBudget > 0 {
		sess.jumpRemaining--
	}
	sess.appendEvents(events)

	writeJSON(w, http.StatusOK, jumpResponse{PublicState: toPublicStateDTO(state.PublicView())})
}

// handleAITrace computes a hypothetical order-unknown trace from the
// session's current public state. The trace never touches the ordered
// deck: policy.Trace's input type makes that structurally impossible.
func (s *Server) handleAITrace(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	sess, ok := s.sessions.get(gameID)
	if !ok {
		writeCoreError(w, engine.ErrInvalidActionShape, map[string]any{"game_id": gameID})
		return
	}

	if sess.hintBudget > 0 && sess.hintRemaining <= 0 {
		writeCoreError(w, engine.ErrHintBudgetExhausted, map[string]any{"game_id": gameID})
		return
	}

	steps := policy.Trace(sess.state.PublicView())
	dtoSteps := make([]traceStepDTO, len(steps))
	for i, step := range steps {
		dtoSteps[i] = traceStepDTO{
			StepIndex:      step.StepIndex,
			Action:         fromAction(step.Action),
			ExplanationKey: step.ExplanationKey,
			Params:         step.Params,
		}
	}
	if sess.hintBudget > 0 {
		sess.hintRemaining--
	}

	writeJSON(w, http.StatusOK, traceResponse{
		Seed:    sess.seed,
		Policy:  "heuristic",
		InfoSet: "order_unknown",
		Steps:   dtoSteps,
	})
}

func parseMode(s string) (engine.Mode, error) {
	switch s {
	case "practice", "":
		return engine.Practice, nil
	case "challenge":
		return engine.Challenge, nil
	default:
		return engine.Practice, errUnknownMode
	}
}

func budgetPolicy(total, remaining int) policyDTO {
	if total <= 0 {
		return policyDTO{Policy: "unlimited"}
	}
	return policyDTO{Policy: "limited", BudgetTotal: total, BudgetRemaining: remaining}
}

func fromAction(a engine.Action) actionDTO {
	return actionDTO{Type: a.Type.String(), SelectedIndices: append([]int(nil), a.Indices...)}
}
