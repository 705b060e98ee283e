package app

import (
	"slices"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/pillbar/internal/config"
	"github.com/zhubert/pillbar/internal/gesture"
	"github.com/zhubert/pillbar/internal/haptics"
	"github.com/zhubert/pillbar/internal/keys"
	"github.com/zhubert/pillbar/internal/tabbar"
	"github.com/zhubert/pillbar/internal/ui"
)

// On an 80x24 terminal the docked bar spans rows 20-22; its tab items sit
// on rows 21-22 in four 20-column slots.
const (
	barItemRow = 21
	homeCol    = 10
	favCol     = 30
	searchCol  = 50
)

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.SetProfile("glass")

	if _, err := New(Options{Config: cfg, ViewContext: ui.NewViewContext(8, 16), Manual: true}); err == nil {
		t.Error("New() should reject an unknown profile")
	}
}

func TestWindowSize_SetsLayout(t *testing.T) {
	h := testModel(t)

	l := h.m.Core().Layout()
	if l.ViewportWidth != 640 || l.ViewportHeight != 384 {
		t.Errorf("viewport = %vx%v, want 640x384", l.ViewportWidth, l.ViewportHeight)
	}
	if !l.Landscape {
		t.Error("an 80x24 terminal at 8x16 is landscape")
	}
	if !approx(l.ClampDistance, -19.2) {
		t.Errorf("clamp = %v, want -19.2", l.ClampDistance)
	}
}

func TestView_Loading(t *testing.T) {
	m, err := New(Options{ViewContext: ui.NewViewContext(8, 16), Manual: true, Haptics: &haptics.Recorder{}})
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()

	v := m.View()
	if !v.AltScreen || v.MouseMode != tea.MouseModeCellMotion {
		t.Error("View() should request the alt screen and cell motion mouse mode")
	}
}

func TestView_DockedBar(t *testing.T) {
	h := testModel(t)

	out := ansi.Strip(h.m.render())
	lines := strings.Split(out, "\n")
	if len(lines) != 24 {
		t.Fatalf("frame has %d lines, want 24", len(lines))
	}
	if !strings.Contains(lines[0], "pillbar · Home") || !strings.Contains(lines[0], "docked") {
		t.Errorf("header = %q", lines[0])
	}
	labels := lines[22]
	for _, want := range []string{"Home", "Favorite", "Search", "Profile"} {
		if !strings.Contains(labels, want) {
			t.Errorf("label row %q missing %q", labels, want)
		}
	}
	if strings.Contains(out, "╭") {
		t.Error("docked bar should not have rounded corners")
	}
}

func TestTap_NavigatesWithoutHaptic(t *testing.T) {
	h := testModel(t)

	h.down(favCol, barItemRow)
	h.up(favCol, barItemRow)

	if got := h.m.Navigator().Index(); got != 1 {
		t.Errorf("index = %d, want 1", got)
	}
	if h.m.Screen().Route() != ui.ScreenFavorite {
		t.Errorf("screen = %q, want favorite", h.m.Screen().Route())
	}
	if h.rec.Count() != 0 {
		t.Errorf("a tap fired %d haptics, want 0", h.rec.Count())
	}
	if h.m.Core().Snapshot().Phase != gesture.PhaseDocked {
		t.Error("a tap should leave the bar docked")
	}
}

func TestTap_ActiveTabScrollsToTop(t *testing.T) {
	h := testModel(t)

	h.key("pgdown")
	if h.m.Screen().AtTop() {
		t.Fatal("pgdown should scroll the home feed")
	}

	h.down(homeCol, barItemRow)
	h.up(homeCol, barItemRow)

	if !h.m.Screen().AtTop() {
		t.Error("pressing the active tab should scroll back to the top")
	}
	if got := h.m.Navigator().Index(); got != 0 {
		t.Errorf("index = %d, want 0", got)
	}
}

func TestTap_PreventedByListener(t *testing.T) {
	h := testModel(t)
	unsub := h.m.Navigator().AddListener(tabbar.EventTabPress, func(e *tabbar.Event) {
		e.PreventDefault()
	})
	defer unsub()

	h.down(searchCol, barItemRow)
	h.up(searchCol, barItemRow)
	h.key("right")

	if got := h.m.Navigator().Index(); got != 0 {
		t.Errorf("index = %d, want 0 when tabPress is prevented", got)
	}
}

func TestLongPressDrag(t *testing.T) {
	tests := []struct {
		name      string
		toRow     int
		wantPhase gesture.Phase
		wantY     float64
	}{
		// 3 rows up is -48pt, well past the -19.2pt clamp.
		{"far drag floats", barItemRow - 3, gesture.PhaseFloating, -19.2},
		// 1 row up is -16pt, short of the clamp.
		{"short drag docks", barItemRow - 1, gesture.PhaseDocked, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testModel(t)
			var longPresses []string
			h.m.Navigator().AddListener(tabbar.EventTabLongPress, func(e *tabbar.Event) {
				longPresses = append(longPresses, e.Target)
			})

			h.down(searchCol, barItemRow)
			h.hold()

			snap := h.m.Core().Snapshot()
			if snap.Phase != gesture.PhaseDragging || !snap.Active {
				t.Fatalf("after long press: phase %v active %v", snap.Phase, snap.Active)
			}
			if !slices.Equal(h.rec.Styles(), []haptics.Style{haptics.Heavy}) {
				t.Errorf("haptics = %v, want one heavy pulse", h.rec.Styles())
			}
			if len(longPresses) != 1 || !strings.HasPrefix(longPresses[0], "search-") {
				t.Errorf("tabLongPress targets = %v, want the search route", longPresses)
			}
			if !strings.Contains(ansi.Strip(h.m.render()), "dragging") {
				t.Error("header should report dragging")
			}

			h.move(searchCol, tt.toRow)
			h.up(searchCol, tt.toRow)
			h.settle(t)

			snap = h.m.Core().Snapshot()
			if snap.Phase != tt.wantPhase {
				t.Errorf("phase = %v, want %v", snap.Phase, tt.wantPhase)
			}
			if snap.Active {
				t.Error("active should be false once settled")
			}
			if !approx(snap.Offset.Y, tt.wantY) || !approx(snap.Anchor.Y, tt.wantY) {
				t.Errorf("offset/anchor y = %v/%v, want %v", snap.Offset.Y, snap.Anchor.Y, tt.wantY)
			}
			if h.rec.Count() != 1 {
				t.Errorf("haptics = %d, want exactly 1", h.rec.Count())
			}
			if h.m.Navigator().Index() != 0 {
				t.Error("a drag must not navigate")
			}
		})
	}
}

func TestFloatingBar_Rendering(t *testing.T) {
	h := testModel(t)
	h.key("f")
	h.settle(t)

	out := ansi.Strip(h.m.render())
	if !strings.Contains(out, "╭") || !strings.Contains(out, "╯") {
		t.Error("floating bar should be drawn with rounded corners")
	}
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[0], "floating") {
		t.Errorf("header = %q, want floating status", lines[0])
	}
	if flash := h.m.Footer().Flash(); flash == nil || flash.Text != "tab bar floating" {
		t.Errorf("flash = %+v, want the settle announcement", flash)
	}
}

func TestRelease_WithoutLongPressIsNoop(t *testing.T) {
	h := testModel(t)

	h.down(homeCol, barItemRow)
	h.move(homeCol, barItemRow-3) // leaves the tolerance radius at once
	h.hold()
	h.up(homeCol, barItemRow-3)

	snap := h.m.Core().Snapshot()
	if snap.Phase != gesture.PhaseDocked || snap.Offset != (gesture.Vec2{}) {
		t.Errorf("snapshot = %+v, want untouched docked state", snap)
	}
	if h.rec.Count() != 0 {
		t.Error("no haptic without a long press")
	}
	if h.m.Core().Settling() {
		t.Error("no settle without a long press")
	}
}

func TestLongPress_InterruptsSettle(t *testing.T) {
	h := testModel(t)

	h.key("f")
	h.stepFor(125 * time.Millisecond)
	mid := h.m.Core().Snapshot().Offset
	if mid.Y >= 0 || mid.Y <= -19.2 {
		t.Fatalf("mid-settle offset = %v, want strictly between 0 and the clamp", mid.Y)
	}

	ch := h.m.barChrome()
	h.down(ch.Content.X+1, ch.Content.Y)
	h.hold()

	snap := h.m.Core().Snapshot()
	if snap.Phase != gesture.PhaseDragging {
		t.Fatalf("phase = %v, want dragging", snap.Phase)
	}
	if snap.Anchor != mid {
		t.Errorf("anchor = %v, want the animated value %v", snap.Anchor, mid)
	}
	if h.m.Core().Settling() {
		t.Error("the settle should be canceled")
	}
}

func TestKeys_TabSwitching(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want int
	}{
		{"right", []string{"right"}, 1},
		{"tab", []string{"tab", "tab"}, 2},
		{"left wraps", []string{"left"}, 3},
		{"shift+tab wraps", []string{"shift+tab"}, 3},
		{"jump", []string{"4"}, 3},
		{"jump then back", []string{"3", "left"}, 1},
		{"out of range jump ignored", []string{"2", "9"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testModel(t)
			for _, k := range tt.keys {
				h.key(k)
			}
			if got := h.m.Navigator().Index(); got != tt.want {
				t.Errorf("index = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestKeys_ToggleFloat(t *testing.T) {
	h := testModel(t)

	h.key("f")
	h.settle(t)
	if got := h.m.Core().Snapshot().Phase; got != gesture.PhaseFloating {
		t.Fatalf("phase = %v, want floating", got)
	}

	h.key("f")
	h.settle(t)
	if got := h.m.Core().Snapshot().Phase; got != gesture.PhaseDocked {
		t.Errorf("phase = %v, want docked", got)
	}
	if h.rec.Count() != 0 {
		t.Error("keyboard toggles do not fire the long-press haptic")
	}
}

func TestKeys_Quit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		h := testModel(t)
		if cmd := h.key(k); cmd == nil {
			t.Errorf("%q should return tea.Quit", k)
		}
	}
}

func TestKeys_ThemeToggle(t *testing.T) {
	cfg := config.Default()
	h := testModelWithSize(t, cfg, 80, 24)

	h.key("ctrl+t")

	if ui.CurrentThemeName() != ui.ThemeLight {
		t.Errorf("theme = %q, want light", ui.CurrentThemeName())
	}
	if cfg.GetTheme() != config.ThemeLight {
		t.Errorf("config theme = %q, want light", cfg.GetTheme())
	}
	route := h.m.Navigator().Current()
	if route.InactiveColor != "#666666" || route.ActiveColor != "#007AFF" {
		t.Errorf("route tints = %s/%s, want the light theme's", route.ActiveColor, route.InactiveColor)
	}
}

func TestFavorite_KeyboardButtons(t *testing.T) {
	h := testModel(t)
	h.key("2")

	h.key("down")
	h.key("enter")

	if got := h.rec.Styles(); !slices.Equal(got, []haptics.Style{haptics.Light}) {
		t.Errorf("selection haptics = %v, want one light pulse", got)
	}
	if got := h.rec.Notifications(); !slices.Equal(got, []haptics.Notification{haptics.Success}) {
		t.Errorf("notifications = %v, want [success]", got)
	}
	flash := h.m.Footer().Flash()
	if flash == nil || flash.Type != ui.FlashSuccess {
		t.Errorf("flash = %+v, want a success flash", flash)
	}
}

func TestFavorite_ClickButton(t *testing.T) {
	h := testModel(t)
	h.key("2")

	if _, ok := h.m.Screen().ButtonAt(0, 0); ok {
		t.Fatal("caption should not be a button")
	}

	heavy := h.m.Screen().Buttons()[6]
	h.down(firstCol(t, h, heavy.Label), firstRow(t, h, heavy.Label))
	if got := h.rec.Styles(); !slices.Equal(got, []haptics.Style{haptics.Heavy}) {
		t.Errorf("impacts = %v, want [heavy]", got)
	}
}

// firstCol and firstRow locate a label in the rendered frame.
func firstCol(t *testing.T, h *harness, label string) int {
	t.Helper()
	for _, line := range strings.Split(ansi.Strip(h.m.render()), "\n") {
		if i := strings.Index(line, label); i >= 0 {
			return ansi.StringWidth(line[:i])
		}
	}
	t.Fatalf("label %q not rendered", label)
	return 0
}

func firstRow(t *testing.T, h *harness, label string) int {
	t.Helper()
	for row, line := range strings.Split(ansi.Strip(h.m.render()), "\n") {
		if strings.Contains(line, label) {
			return row
		}
	}
	t.Fatalf("label %q not rendered", label)
	return 0
}

func TestFlashTick_ClearsExpired(t *testing.T) {
	h := testModel(t)
	h.m.Footer().SetFlashWithDuration("gone", ui.FlashInfo, -time.Second)

	_, cmd := h.m.Update(ui.FlashTickMsg(time.Now()))
	if cmd != nil {
		t.Error("an expired flash needs no further ticks")
	}
	if h.m.Footer().HasFlash() {
		t.Error("expired flash should be cleared")
	}
}

func TestAnimatorDrivenSettle(t *testing.T) {
	m, err := New(Options{
		Haptics:       &haptics.Recorder{},
		ViewContext:   ui.NewViewContext(8, 16),
		FrameInterval: time.Millisecond,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	listen := m.Init()
	m.Update(keys.Press("f"))

	deadline := time.After(2 * time.Second)
	for {
		msgs := make(chan tea.Msg, 1)
		go func() { msgs <- listen() }()
		select {
		case msg := <-msgs:
			fm, ok := msg.(FrameMsg)
			if !ok {
				t.Fatalf("listener returned %T, want FrameMsg", msg)
			}
			m.Update(fm)
			if fm.Frame.Done {
				if got := m.Core().Snapshot().Phase; got != gesture.PhaseFloating {
					t.Errorf("phase = %v, want floating", got)
				}
				return
			}
			listen = m.listenForFrames()
		case <-deadline:
			t.Fatal("settle frames never arrived")
		}
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func TestItemCell(t *testing.T) {
	h := testModel(t)

	for i, want := range []int{9, 29, 49, 69} {
		x, y, ok := h.m.ItemCell(i)
		if !ok || x != want || y != barItemRow {
			t.Errorf("ItemCell(%d) = (%d, %d, %v), want (%d, %d, true)", i, x, y, ok, want, barItemRow)
		}
	}
	if _, _, ok := h.m.ItemCell(4); ok {
		t.Error("ItemCell past the last route should fail")
	}
}
