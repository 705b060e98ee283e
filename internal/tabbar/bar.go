package tabbar

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Height is the number of rows a rendered bar occupies: icons then labels.
const Height = 2

const ellipsis = "…"

// Bar dispatches presses for one state. It is rebuilt from the navigator's
// state whenever that changes.
type Bar struct {
	state State
	nav   Navigator
}

// New returns a bar for the given state.
func New(state State, nav Navigator) Bar {
	return Bar{state: state, nav: nav}
}

// State returns the state the bar was built from.
func (b Bar) State() State { return b.state }

// Press handles a tap on item i. A cancelable tabPress is emitted first; the
// bar navigates only when the item is not already focused and no listener
// prevented the default. It reports whether navigation happened.
func (b Bar) Press(i int) bool {
	if i < 0 || i >= len(b.state.Routes) || b.nav == nil {
		return false
	}
	r := b.state.Routes[i]
	ev := NewEvent(EventTabPress, r.Key, true)
	b.nav.Emit(ev)

	if b.state.Focused(i) || ev.DefaultPrevented() {
		return false
	}
	b.nav.Navigate(r.Name, r.Params)
	return true
}

// LongPress emits tabLongPress for item i. It never navigates.
func (b Bar) LongPress(i int) {
	if i < 0 || i >= len(b.state.Routes) || b.nav == nil {
		return
	}
	b.nav.Emit(NewEvent(EventTabLongPress, b.state.Routes[i].Key, false))
}

// ItemAt maps a column inside a bar of the given width to an item index.
func (b Bar) ItemAt(col, width int) (int, bool) {
	if col < 0 || col >= width {
		return 0, false
	}
	x := 0
	for i, w := range splitWidth(width, len(b.state.Routes)) {
		if col < x+w {
			return i, true
		}
		x += w
	}
	return 0, false
}

// View renders the bar at width cells over the given background color.
// An empty background leaves the terminal's own background showing.
func (b Bar) View(width int, background string) string {
	n := len(b.state.Routes)
	if n == 0 || width <= 0 {
		return strings.Repeat(" ", max(width, 0)) + "\n" + strings.Repeat(" ", max(width, 0))
	}

	widths := splitWidth(width, n)
	icons := make([]string, n)
	labels := make([]string, n)
	for i, r := range b.state.Routes {
		color := r.InactiveColor
		if b.state.Focused(i) {
			color = r.ActiveColor
		}
		style := lipgloss.NewStyle().Width(widths[i]).Align(lipgloss.Center)
		if color != "" {
			style = style.Foreground(lipgloss.Color(color))
		}
		if background != "" {
			style = style.Background(lipgloss.Color(background))
		}
		if b.state.Focused(i) {
			style = style.Bold(true)
		}
		icons[i] = style.Render(iconGlyph(r.Icon))
		labels[i] = style.Render(fitLabel(r.DisplayLabel(), widths[i]))
	}
	return strings.Join(icons, "") + "\n" + strings.Join(labels, "")
}

// splitWidth divides total into n columns, giving the remainder to the
// leftmost items.
func splitWidth(total, n int) []int {
	if n <= 0 {
		return nil
	}
	widths := make([]int, n)
	base, extra := total/n, total%n
	for i := range widths {
		widths[i] = base
		if i < extra {
			widths[i]++
		}
	}
	return widths
}

// iconGlyph returns the first grapheme cluster of an icon, or a blank
// placeholder when the route has none.
func iconGlyph(icon string) string {
	icon = strings.TrimSpace(icon)
	if icon == "" {
		return " "
	}
	g, _, _, _ := uniseg.FirstGraphemeClusterInString(icon, -1)
	return g
}

// fitLabel truncates a label to the item width by display width.
func fitLabel(label string, width int) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return " "
	}
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(label) <= width {
		return label
	}
	return runewidth.Truncate(label, width, ellipsis)
}
