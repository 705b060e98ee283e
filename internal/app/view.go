package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/pillbar/internal/gesture"
	"github.com/zhubert/pillbar/internal/ui"
)

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	v.SetContent(m.render())
	return v
}

// render draws the full frame as a string.
func (m *Model) render() string {
	m.header.SetStatus(m.status())
	if m.screen.Scrollable() {
		m.footer.SetExtra()
	} else {
		m.footer.SetExtra(selectBinding, fireBinding)
	}

	frame := strings.Join([]string{
		m.header.View(),
		m.screen.View(),
		m.footer.View(),
	}, "\n")

	ch := m.barChrome()
	bar := ui.RenderBar(ch, m.tabBar())
	frame = ui.ComposeBar(frame, bar, ch, m.vc.TerminalWidth, m.vc.TerminalHeight)
	return m.modal.Render(frame, m.vc.TerminalWidth, m.vc.TerminalHeight)
}

// status describes the bar's phase for the header.
func (m *Model) status() string {
	snap := m.core.Snapshot()
	if snap.Phase == gesture.PhaseSettling {
		return fmt.Sprintf("settling → %s", snap.Target)
	}
	return snap.Phase.String()
}

// RenderToString renders the current frame. Demos capture frames with it.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	return m.render()
}

// ItemCell returns the terminal cell at the middle of tab item i as the bar
// is currently drawn.
func (m *Model) ItemCell(i int) (x, y int, ok bool) {
	ch := m.barChrome()
	bar := m.tabBar()
	first, last := -1, -1
	for col := 0; col < ch.Content.Width; col++ {
		if item, hit := bar.ItemAt(col, ch.Content.Width); hit && item == i {
			if first < 0 {
				first = col
			}
			last = col
		}
	}
	if first < 0 {
		return 0, 0, false
	}
	return ch.Content.X + (first+last)/2, ch.Content.Y, true
}
