package httpapi

import "github.com/lox/pokercore/internal/engine"

// statusFor maps a CoreError's message key to the HTTP status the
// design notes assign its category: 400 validation, 409 session-state,
// 422 contract violation. Information-set violations never reach here
// — they panic inside the core rather than returning a CoreError — so
// 500 is this function's fallback for any key it does not recognize,
// not a mapped category of its own.
func statusFor(key string) int {
	switch key {
	case engine.ErrPlayRequiresFive,
		engine.ErrDiscardSizeInvalid,
		engine.ErrDiscardBudgetExceed,
		engine.ErrIndicesOutOfRange,
		engine.ErrIndicesNotUnique:
		return 400
	case engine.ErrGameAlreadyEnded,
		engine.ErrJumpNotAllowed,
		engine.ErrJumpBudgetExhausted,
		engine.ErrHintBudgetExhausted:
		return 409
	case engine.ErrInvalidActionShape,
		engine.ErrUnknownMode,
		engine.ErrUnknownDifficultyTier,
		engine.ErrSeedManifestMissing:
		return 422
	default:
		return 500
	}
}
