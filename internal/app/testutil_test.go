package app

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/pillbar/internal/config"
	"github.com/zhubert/pillbar/internal/haptics"
	"github.com/zhubert/pillbar/internal/keys"
	"github.com/zhubert/pillbar/internal/ui"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// harness bundles a manual model with its clock and haptics recorder.
type harness struct {
	m     *Model
	clock *fakeClock
	rec   *haptics.Recorder
}

// testModelWithSize creates a manual model on an 80x24 terminal at 8x16
// points per cell (640x384 points).
func testModelWithSize(t *testing.T, cfg *config.Config, width, height int) *harness {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	clock := newFakeClock()
	rec := &haptics.Recorder{}
	m, err := New(Options{
		Config:      cfg,
		Haptics:     rec,
		ViewContext: ui.NewViewContext(8, 16),
		Now:         clock.Now,
		Manual:      true,
		Version:     "0.0.0-test",
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		m.Close()
		ui.SetTheme(ui.DefaultTheme)
	})
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return &harness{m: m, clock: clock, rec: rec}
}

func testModel(t *testing.T) *harness {
	t.Helper()
	return testModelWithSize(t, nil, 80, 24)
}

func (h *harness) key(k string) tea.Cmd {
	_, cmd := h.m.Update(keys.Press(k))
	return cmd
}

func (h *harness) down(x, y int) {
	h.m.Update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
}

func (h *harness) move(x, y int) {
	h.m.Update(tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft})
}

func (h *harness) up(x, y int) {
	h.m.Update(tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft})
}

// hold waits out the long-press threshold and delivers the timer message.
func (h *harness) hold() {
	seq, _, ok := h.m.Core().PendingLongPress()
	if !ok {
		return
	}
	h.clock.Advance(h.m.Core().Config().LongPressThreshold)
	h.m.Update(LongPressMsg{Seq: seq})
}

// settle steps the manual core until its settle completes.
func (h *harness) settle(t *testing.T) {
	t.Helper()
	for i := 0; h.m.Core().Settling(); i++ {
		if i > 1000 {
			t.Fatal("settle did not complete")
		}
		h.clock.Advance(16 * time.Millisecond)
		if f, ok := h.m.Core().Advance(); ok {
			h.m.Update(FrameMsg{Frame: f})
		}
	}
}

// stepFor advances a settle by d without finishing it.
func (h *harness) stepFor(d time.Duration) {
	h.clock.Advance(d)
	if f, ok := h.m.Core().Advance(); ok {
		h.m.Update(FrameMsg{Frame: f})
	}
}
