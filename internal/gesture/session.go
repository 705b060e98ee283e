package gesture

import (
	"sync"

	"github.com/google/uuid"
)

// Phase is the bar's position in the docked/floating state machine.
type Phase int

const (
	PhaseDocked Phase = iota
	PhaseDragging
	PhaseSettling
	PhaseFloating
)

func (p Phase) String() string {
	switch p {
	case PhaseDocked:
		return "docked"
	case PhaseDragging:
		return "dragging"
	case PhaseSettling:
		return "settling"
	case PhaseFloating:
		return "floating"
	default:
		return "unknown"
	}
}

// Snapshot is a consistent copy of a session for the render context.
type Snapshot struct {
	ID     string
	Phase  Phase
	Target Phase // resting phase the bar is heading to, or is in
	Active bool
	Offset Vec2
	Anchor Vec2
	Gen    uint64
}

// Session is the mutable gesture state of one mounted tab bar.
type Session struct {
	mu     sync.RWMutex
	id     string
	phase  Phase
	target Phase
	active bool
	offset Vec2
	anchor Vec2
	gen    uint64
}

// NewSession returns a docked session.
func NewSession() *Session {
	return &Session{phase: PhaseDocked, target: PhaseDocked}
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		ID:     s.id,
		Phase:  s.phase,
		Target: s.target,
		Active: s.active,
		Offset: s.offset,
		Anchor: s.anchor,
		Gen:    s.gen,
	}
}

// BeginDrag handles long-press recognition. It takes the session away from
// any in-flight settle, anchoring at the current animated offset, and
// returns true when the session entered Dragging. A second recognition while
// already dragging returns false.
func (s *Session) BeginDrag() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseDragging {
		return false
	}
	s.gen++
	s.id = uuid.NewString()
	s.anchor = s.offset
	s.active = true
	s.phase = PhaseDragging
	return true
}

// Pan applies a pointer delta measured from the start of the gesture.
// The delta is damped by how far the bar already travelled up the viewport,
// and the horizontal component is further divided by divisor. Pan is a no-op
// unless the session is dragging.
func (s *Session) Pan(delta Vec2, viewportHeight, divisor float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseDragging || viewportHeight <= 0 {
		return
	}
	damping := (viewportHeight + s.offset.Y) / viewportHeight
	s.offset = Vec2{
		X: s.anchor.X + delta.X*damping/divisor,
		Y: s.anchor.Y + delta.Y*damping,
	}
}

// EndGesture commits the current offset as the anchor for the next drag.
// It runs on every gesture end, recognized or not.
func (s *Session) EndGesture() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseSettling {
		return
	}
	s.anchor = s.offset
}

// Finalize makes the settle decision after a drag. It returns the settle to
// run and true, or false when the session was not active. A bar already at
// its target comes to rest immediately and the returned settle is done.
func (s *Session) Finalize(l Layout) (Settle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active || s.phase != PhaseDragging {
		return Settle{}, false
	}
	return s.startSettleLocked(l.SettleTarget(s.offset.Y), l), true
}

// SettleTo starts a settle toward a resting phase without a drag, as the
// keyboard toggle does. Any drag or settle in progress is superseded.
func (s *Session) SettleTo(target Phase, l Layout) Settle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startSettleLocked(target, l)
}

func (s *Session) startSettleLocked(target Phase, l Layout) Settle {
	s.gen++
	st := Settle{
		Gen:    s.gen,
		From:   s.offset,
		To:     l.Rest(target),
		Target: target,
	}
	s.target = target
	if st.From == st.To {
		s.restLocked(target, st.To)
		st.done = true
		return st
	}
	s.phase = PhaseSettling
	return st
}

// apply writes one settle frame. Frames from a superseded settle are
// dropped and apply returns false.
func (s *Session) apply(gen uint64, v Vec2, done bool, target Phase) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || s.phase != PhaseSettling {
		return false
	}
	if done {
		s.restLocked(target, v)
		return true
	}
	s.offset = v
	s.anchor = v
	return true
}

func (s *Session) restLocked(target Phase, at Vec2) {
	s.offset = at
	s.anchor = at
	s.active = false
	s.phase = target
	s.target = target
}

// Relayout moves a resting floating bar onto a new clamp distance.
func (s *Session) Relayout(l Layout) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseFloating {
		s.restLocked(PhaseFloating, l.Rest(PhaseFloating))
	}
}
