package gesture

import "time"

// Settle is a time-bounded animation of a session's offset and anchor toward
// a resting position.
type Settle struct {
	Gen    uint64
	From   Vec2
	To     Vec2
	Target Phase

	Start    time.Time
	Duration time.Duration
	curve    Curve
	done     bool
}

// Frame is one step of a settle, delivered to the render context.
type Frame struct {
	Gen    uint64
	Offset Vec2
	Target Phase
	Done   bool
}

// Timed returns a copy of st that starts at now and follows curve.
func (st Settle) Timed(now time.Time, d time.Duration, curve Curve) Settle {
	st.Start = now
	st.Duration = d
	st.curve = curve
	return st
}

// Done reports whether the session already rests at the target.
func (st Settle) Done() bool { return st.done }

// At returns the animated offset at now and whether the settle has finished.
func (st Settle) At(now time.Time) (Vec2, bool) {
	if st.done || st.Duration <= 0 {
		return st.To, true
	}
	elapsed := now.Sub(st.Start)
	if elapsed >= st.Duration {
		return st.To, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	t := float64(elapsed) / float64(st.Duration)
	curve := st.curve
	if curve == nil {
		curve = easeInOutQuad
	}
	return Lerp(st.From, st.To, curve(t)), false
}

// Step writes the value at now into s. It returns false once a newer
// gesture or settle owns the session, which stops the driver.
func (st Settle) Step(s *Session, now time.Time) (Frame, bool) {
	v, done := st.At(now)
	if !s.apply(st.Gen, v, done, st.Target) {
		return Frame{}, false
	}
	return Frame{Gen: st.Gen, Offset: v, Target: st.Target, Done: done}, true
}
