package engine

// Jump deterministically reconstructs the state after replaying
// history[0:k] from a fresh Start(seed, mode, tier, targetScore).
// It never consults the session's current state — only the seed and
// the truncated log — so it is safe to call from a caller that has
// already decided to discard everything after step k.
//
// hint_budget and jump_budget are NOT part of this reconstruction:
// they are session bookkeeping the caller must track outside the
// replayable path.
func Jump(seed uint64, mode Mode, tier string, targetScore *int, history []Action, k int) (*GameState, []Event, *CoreError) {
	if k < 0 || k > len(history) {
		return nil, nil, newError(ErrJumpNotAllowed, map[string]any{"k": k, "history_len": len(history)})
	}

	state, events := Start(seed, mode, tier, targetScore)
	for i := 0; i < k; i++ {
		var stepEvents []Event
		var err *CoreError
		state, stepEvents, err = Apply(state, history[i])
		if err != nil {
			// A previously-valid log should never fail to replay; surface
			// the error rather than silently truncating further.
			return nil, nil, err
		}
		events = append(events, stepEvents...)
	}
	events = append(events, newEvent(EventGameJumped, map[string]any{"step_index": k}))
	return state, events, nil
}
