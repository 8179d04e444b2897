// Package infoset implements the information-set guard: a tag carried
// by each Context value (there is no process-wide setting) that governs
// which constructors may see the ordered remaining deck. Runtime code
// (internal/policy, internal/httpapi) holds no Context at all and only
// ever receives engine.PublicState; calibration code
// (internal/calibration, internal/rollout, cmd/calibrate) obtains one
// from Calibration. Crossing the boundary
// is a code or deployment bug and panics rather than returning an
// error: an information-set violation is fatal to the process, not
// something a caller should be expected to recover from.
package infoset

// Context is an opaque capability proving which side of the
// information-set boundary the caller is on. The zero value is not a
// valid Context; always obtain one from Runtime or Calibration.
type Context struct {
	tag string
}

const (
	tagRuntime     = "runtime"
	tagCalibration = "calibration"
)

// Runtime returns the order-unknown context. No runtime package holds
// one; it is used by tests to check that calibration-only constructors
// refuse it.
func Runtime() Context { return Context{tag: tagRuntime} }

// Calibration returns the ordered-deck context used only by the
// offline calibration pipeline and the rollout EV evaluator.
func Calibration() Context { return Context{tag: tagCalibration} }

// IsCalibration reports whether c carries privileged, ordered-deck
// access.
func (c Context) IsCalibration() bool { return c.tag == tagCalibration }

// RequireCalibration panics unless c is a calibration context. Call
// this at the construction site of any component that touches ordered
// deck state (the rollout evaluator, the stage-2 refinement driver) —
// never inside a hot loop, since the panic is meant to fail a
// deployment immediately, not to be recovered from.
func RequireCalibration(c Context) {
	if !c.IsCalibration() {
		panic("infoset: calibration_component_in_runtime: ordered-deck component constructed outside a calibration context")
	}
}
