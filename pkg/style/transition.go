package style

import "github.com/go-drift/maplibre/pkg/wire"

// Transition is a per-property animation timing descriptor applied when an
// animatable paint property changes. Units are milliseconds end-to-end; any
// renderer-specific conversion to seconds happens exactly once, at the
// outermost serialization boundary in the controller, never here.
type Transition struct {
	// DelayMs is the time before the transition starts, in milliseconds.
	DelayMs int64
	// DurationMs is the transition length, in milliseconds.
	DurationMs int64
}

// NewTransition builds a transition descriptor. Negative inputs clamp to
// zero; no other validation applies.
func NewTransition(delayMs, durationMs int64) Transition {
	if delayMs < 0 {
		delayMs = 0
	}
	if durationMs < 0 {
		durationMs = 0
	}
	return Transition{DelayMs: delayMs, DurationMs: durationMs}
}

// ToWire encodes the descriptor as its wire map.
func (t Transition) ToWire() map[string]any {
	return map[string]any{
		"delay":    t.DelayMs,
		"duration": t.DurationMs,
	}
}

// transitionFromMap decodes a wire-shaped transition map.
func transitionFromMap(m map[string]any) (Transition, bool) {
	delay, okDelay := wire.Int64(m["delay"])
	duration, okDuration := wire.Int64(m["duration"])
	if !okDelay && !okDuration {
		return Transition{}, false
	}
	if len(m) > 2 {
		return Transition{}, false
	}
	return NewTransition(delay, duration), true
}
