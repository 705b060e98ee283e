package gesture

import (
	"log/slog"
	"sync"
	"time"

	"github.com/zhubert/pillbar/internal/haptics"
	"github.com/zhubert/pillbar/internal/logger"
)

// Impactor receives haptic requests. Implementations must return without
// blocking; the core never waits on feedback.
type Impactor interface {
	Impact(style haptics.Style)
}

// Options configures a Core.
type Options struct {
	Impactor      Impactor
	Now           func() time.Time
	FrameInterval time.Duration

	// Manual disables the animator goroutine. Settles then only move when
	// Advance is called, which keeps scripted runs deterministic.
	Manual bool
}

type pointer struct {
	down       bool
	seq        int
	origin     Vec2
	pressedAt  time.Time
	canceled   bool
	recognized bool
}

// Core composes the long-press and pan gestures over one Session and owns
// the settle driver.
type Core struct {
	cfg      Config
	curve    Curve
	session  *Session
	animator *Animator
	impactor Impactor
	now      func() time.Time
	manual   bool
	log      *slog.Logger

	// dragLog carries the session id of the current drag.
	dragLog *slog.Logger

	mu      sync.Mutex
	layout  Layout
	settle  Settle
	pointer pointer
}

// NewCore validates cfg and returns a docked core.
func NewCore(cfg Config, opts Options) (*Core, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	curve, err := cfg.SettleCurve.Curve(cfg.SettleDuration)
	if err != nil {
		return nil, err
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Core{
		cfg:      cfg,
		curve:    curve,
		session:  NewSession(),
		animator: NewAnimator(opts.FrameInterval, now),
		impactor: opts.Impactor,
		now:      now,
		manual:   opts.Manual,
		log:      logger.WithComponent("gesture"),
		dragLog:  logger.WithComponent("gesture"),
	}, nil
}

// Config returns the core's configuration.
func (c *Core) Config() Config { return c.cfg }

// Snapshot returns the current session state.
func (c *Core) Snapshot() Snapshot { return c.session.Snapshot() }

// Layout returns the layout from the last SetViewport.
func (c *Core) Layout() Layout {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.layout
}

// SetViewport recomputes the layout. A floating bar follows the new clamp
// distance and a running settle is retargeted.
func (c *Core) SetViewport(w, h, bottomInset float64) Layout {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.layout = NewLayout(w, h, bottomInset, c.cfg)
	if !c.layout.Valid() {
		c.log.Warn("layout cannot host a floating bar",
			"width", w,
			"height", h,
			"docked_width", c.layout.DockedWidth,
			"floating_width", c.layout.FloatingWidth)
	}
	c.session.Relayout(c.layout)
	if snap := c.session.Snapshot(); snap.Phase == PhaseSettling {
		c.startSettleLocked(c.session.SettleTo(snap.Target, c.layout))
	}
	c.log.Debug("layout updated",
		"width", c.layout.ViewportWidth,
		"height", c.layout.ViewportHeight,
		"landscape", c.layout.Landscape,
		"clamp", c.layout.ClampDistance)
	return c.layout
}

// Present derives the bar's presentation from the current session.
func (c *Core) Present(colors Colors) Presentation {
	l := c.Layout()
	return Present(c.session.Snapshot(), l, c.cfg, colors)
}

// Press records a pointer down at the given point and returns the press
// sequence number. Call LongPressDue with it once the threshold elapses.
func (c *Core) Press(at Vec2) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pointer = pointer{
		down:      true,
		seq:       c.pointer.seq + 1,
		origin:    at,
		pressedAt: c.now(),
	}
	return c.pointer.seq
}

// PendingLongPress reports the press awaiting recognition, if any, and when
// it becomes due.
func (c *Core) PendingLongPress() (seq int, due time.Time, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pointer
	if !p.down || p.canceled || p.recognized {
		return 0, time.Time{}, false
	}
	return p.seq, p.pressedAt.Add(c.cfg.LongPressThreshold), true
}

// LongPressDue recognizes the long-press for press seq if the pointer is
// still down, has stayed within tolerance and has been held long enough.
// It returns true exactly once per recognition, after firing the haptic.
func (c *Core) LongPressDue(seq int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := &c.pointer
	if !p.down || p.seq != seq || p.canceled || p.recognized {
		return false
	}
	if c.now().Sub(p.pressedAt) < c.cfg.LongPressThreshold {
		return false
	}
	p.recognized = true

	if !c.session.BeginDrag() {
		return false
	}
	c.animator.Cancel()

	snap := c.session.Snapshot()
	c.dragLog = logger.WithSession(snap.ID).With(slog.String("component", "gesture"))
	c.dragLog.Debug("long press recognized", "anchor_y", snap.Anchor.Y)
	c.impact()
	return true
}

// impact fires the recognition haptic. A failing impactor is logged and
// never reaches the state machine.
func (c *Core) impact() {
	if c.impactor == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.dragLog.Warn("haptic feedback panicked", "style", string(c.cfg.HapticStyle), "panic", r)
		}
	}()
	c.impactor.Impact(c.cfg.HapticStyle)
}

// Move feeds a pointer position. Before recognition, leaving the tolerance
// radius cancels the long-press; after recognition the delta from the press
// point drives the pan.
func (c *Core) Move(at Vec2) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := &c.pointer
	if !p.down {
		return
	}
	delta := at.Sub(p.origin)
	if !p.recognized {
		if !p.canceled && delta.Len() > c.cfg.LongPressTolerance {
			p.canceled = true
		}
		return
	}
	c.session.Pan(delta, c.layout.ViewportHeight, c.cfg.HorizontalDragDivisor)
}

// Release ends the gesture. If a drag was active the settle decision runs
// and the target phase is returned with true.
func (c *Core) Release() (Phase, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	wasDown := c.pointer.down
	c.pointer.down = false
	if !wasDown {
		return PhaseDocked, false
	}

	c.session.EndGesture()
	st, ok := c.session.Finalize(c.layout)
	if !ok {
		return PhaseDocked, false
	}
	c.dragLog.Debug("drag finalized",
		"offset_y", st.From.Y,
		"clamp", c.layout.ClampDistance,
		"target", st.Target.String())
	c.startSettleLocked(st)
	return st.Target, true
}

// Toggle settles the bar to the opposite resting phase without a drag.
func (c *Core) Toggle() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pointer.down && c.pointer.recognized {
		return c.session.Snapshot().Target
	}
	target := PhaseFloating
	if c.session.Snapshot().Target == PhaseFloating {
		target = PhaseDocked
	}
	c.startSettleLocked(c.session.SettleTo(target, c.layout))
	return target
}

func (c *Core) startSettleLocked(st Settle) {
	c.settle = st.Timed(c.now(), c.cfg.SettleDuration, c.curve)
	if st.Done() {
		c.log.Debug("settled in place", "target", st.Target.String())
		return
	}
	if !c.manual {
		c.animator.Start(c.step)
	}
}

func (c *Core) step(now time.Time) (Frame, bool) {
	c.mu.Lock()
	st := c.settle
	c.mu.Unlock()

	f, ok := st.Step(c.session, now)
	if ok && f.Done {
		c.log.Debug("settle complete", "target", f.Target.String())
	}
	return f, ok
}

// Advance steps the current settle to the core's clock. It is how manual
// cores animate; on a driven core it is harmless.
func (c *Core) Advance() (Frame, bool) {
	return c.step(c.now())
}

// Settling reports whether a settle animation is in flight.
func (c *Core) Settling() bool {
	return c.session.Snapshot().Phase == PhaseSettling
}

// Frames returns the animator's frame channel.
func (c *Core) Frames() <-chan Frame {
	return c.animator.Frames()
}

// Close stops the animator goroutine.
func (c *Core) Close() {
	c.animator.Close()
}
