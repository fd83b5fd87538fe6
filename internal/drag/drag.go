// Package drag implements the pointer interaction state machine: one
// session at a time, Idle -> Dragging -> Idle.
//
// On pointer-down the value being manipulated (startTime, trimStart or
// trimEnd) is captured once. Every pointer-move recomputes the target
// value as origin value plus the full accumulated pointer delta, rather
// than stacking per-event deltas, so a long drag cannot drift.
package drag

import (
	"clipforge/internal/clipops"
	"clipforge/internal/models"
	"clipforge/internal/timeline"
	"clipforge/internal/timescale"
)

// Mode identifies what a drag manipulates.
type Mode string

const (
	ModeMove      Mode = "move"
	ModeTrimLeft  Mode = "trim-left"
	ModeTrimRight Mode = "trim-right"
)

// Valid reports whether m is one of the three drag modes.
func (m Mode) Valid() bool {
	return m == ModeMove || m == ModeTrimLeft || m == ModeTrimRight
}

// Machine tracks at most one in-progress drag session.
type Machine struct {
	scale timescale.Scale

	active      bool
	mode        Mode
	clipID      string
	originX     float64
	originValue float64
}

func NewMachine(scale timescale.Scale) *Machine {
	return &Machine{scale: scale}
}

// Active reports whether a drag session is in progress.
func (m *Machine) Active() bool { return m.active }

// TargetClip returns the id of the clip being dragged, or "".
func (m *Machine) TargetClip() string {
	if !m.active {
		return ""
	}
	return m.clipID
}

// Begin starts a drag session on the given clip, capturing the pre-drag
// value of the scalar the mode manipulates. Pointer-down handlers stop
// propagation in the surface, so Begin while already dragging cannot
// happen; it is ignored if it does. A missing clip is a silent no-op.
func (m *Machine) Begin(tl *timeline.Timeline, clipID string, mode Mode, pointerX float64) bool {
	if m.active || !mode.Valid() {
		return false
	}
	c, ok := tl.Get(clipID)
	if !ok {
		return false
	}
	m.active = true
	m.mode = mode
	m.clipID = clipID
	m.originX = pointerX
	switch mode {
	case ModeMove:
		m.originValue = c.StartTime
	case ModeTrimLeft:
		m.originValue = c.TrimStart
	case ModeTrimRight:
		m.originValue = c.TrimEnd
	}
	return true
}

// Move applies the accumulated pointer delta to the dragged clip. Outside
// a session, or when the clip has been deleted mid-drag, it is a no-op.
func (m *Machine) Move(tl *timeline.Timeline, pointerX float64) {
	if !m.active {
		return
	}
	deltaTime := m.scale.PixelsToTime(pointerX - m.originX)

	switch m.mode {
	case ModeMove:
		tl.Apply(m.clipID, func(c models.Clip) models.Clip {
			return clipops.MoveTo(c, m.originValue+deltaTime)
		})
	case ModeTrimLeft:
		tl.Apply(m.clipID, func(c models.Clip) models.Clip {
			return clipops.TrimLeft(c, m.originValue+deltaTime)
		})
	case ModeTrimRight:
		// Dragging the right handle rightward grows the clip, so the
		// tail trim shrinks: the sign inverts.
		tl.Apply(m.clipID, func(c models.Clip) models.Clip {
			return clipops.TrimRight(c, m.originValue-deltaTime)
		})
	}
}

// End commits the session. Updates were already applied incrementally, so
// there is nothing to roll back; the ephemeral state is simply dropped.
// Pointer-up anywhere ends the drag, regardless of position.
func (m *Machine) End() {
	m.active = false
	m.mode = ""
	m.clipID = ""
	m.originX = 0
	m.originValue = 0
}
