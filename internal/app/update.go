package app

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/pillbar/internal/clipboard"
	"github.com/zhubert/pillbar/internal/gesture"
	"github.com/zhubert/pillbar/internal/haptics"
	"github.com/zhubert/pillbar/internal/keys"
	"github.com/zhubert/pillbar/internal/ui"
	"github.com/zhubert/pillbar/internal/ui/modals"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)

	case tea.MouseClickMsg:
		return m, m.handleMouseDown(msg)

	case tea.MouseMotionMsg:
		m.handleMouseMove(msg)
		return m, nil

	case tea.MouseReleaseMsg:
		return m, m.handleMouseUp()

	case tea.MouseWheelMsg:
		return m, m.screen.Update(msg)

	case modals.HelpShortcutTriggeredMsg:
		return m, m.handleKey(keys.Press(msg.Key))

	case ClipboardErrorMsg:
		// The OSC 52 copy may still have landed
		m.log.Warn("native clipboard write failed", "error", msg.Err)
		return m, nil

	case LongPressMsg:
		return m, m.handleLongPress(msg)

	case FrameMsg:
		return m, m.handleFrame(msg)

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() {
			return m, nil
		}
		if m.footer.HasFlash() {
			return m, ui.FlashTick()
		}
		return m, nil
	}
	return m, nil
}

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	m.vc.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(m.vc.TerminalWidth)
	m.footer.SetWidth(m.vc.TerminalWidth)
	m.screen.SetSize(m.vc.TerminalWidth, m.vc.ContentHeight)

	w, h := m.vc.ViewportPoints()
	m.core.SetViewport(w, h, m.cfg.GetBottomInset())

	docked := ui.PlaceBar(gesture.Present(gesture.Snapshot{}, m.core.Layout(), m.core.Config(), ui.CurrentTheme().Colors()), m.vc)
	m.screen.SetBottomPadding(docked.Placement.Height)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	km := m.footer.Keys()
	s := msg.String()

	switch {
	case key.Matches(msg, km.Quit):
		m.Close()
		return tea.Quit

	case key.Matches(msg, km.Float):
		target := m.core.Toggle()
		m.log.Debug("toggle", "target", target.String())
		return nil

	case key.Matches(msg, km.Theme):
		m.toggleTheme()
		return nil

	case key.Matches(msg, km.Help):
		m.modal.Show(modals.NewHelpState(m.helpSections()), m.height)
		return nil

	case key.Matches(msg, km.Settings):
		m.modal.Show(m.newSettings(), m.height)
		return nil

	case key.Matches(msg, km.Copy):
		return m.copyScreen()

	case key.Matches(msg, km.PrevTab):
		m.pressTab((m.nav.Index() - 1 + m.nav.Len()) % m.nav.Len())
		return nil

	case key.Matches(msg, km.NextTab):
		m.pressTab((m.nav.Index() + 1) % m.nav.Len())
		return nil

	case key.Matches(msg, km.JumpTab):
		if i := int(s[0] - '1'); i < m.nav.Len() {
			m.pressTab(i)
		}
		return nil
	}

	if !m.screen.Scrollable() {
		switch s {
		case keys.Up:
			m.screen.MoveSelection(-1)
			m.haptics.Selection()
		case keys.Down:
			m.screen.MoveSelection(1)
			m.haptics.Selection()
		case keys.Enter, keys.Space:
			if b, ok := m.screen.SelectedButton(); ok {
				return m.fireButton(b)
			}
		}
		return nil
	}

	if key.Matches(msg, km.Scroll) {
		return m.screen.Update(msg)
	}
	return nil
}

// copyScreen puts the frame, without styling, on the clipboard both through
// the terminal and natively.
func (m *Model) copyScreen() tea.Cmd {
	frame := m.RenderToString()
	if frame == "" {
		return nil
	}
	lines := strings.Split(ansi.Strip(frame), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	text := strings.Join(lines, "\n")

	return tea.Batch(
		tea.SetClipboard(text),
		func() tea.Msg {
			if err := clipboard.WriteText(text); err != nil {
				return ClipboardErrorMsg{Err: err}
			}
			return nil
		},
		m.ShowFlashSuccess("screen copied"),
	)
}

// pressTab routes a keyboard tab switch through the bar so listeners see
// the same cancelable tabPress a click produces.
func (m *Model) pressTab(i int) {
	if m.tabBar().Press(i) {
		m.syncScreen()
	}
}

func (m *Model) toggleTheme() {
	next := ui.ThemeLight
	if ui.CurrentThemeName() == ui.ThemeLight {
		next = ui.ThemeDark
	}
	m.setTheme(next)
}

// setTheme switches the palette and retints the tab items.
func (m *Model) setTheme(name ui.ThemeName) {
	ui.SetTheme(name)
	m.cfg.SetTheme(string(ui.CurrentThemeName()))
	theme := ui.CurrentTheme()
	m.nav.SetTint(theme.Primary, theme.Inactive)
	m.screen.Refresh()
}

// fireButton plays a haptics demo button.
func (m *Model) fireButton(b ui.HapticButton) tea.Cmd {
	switch b.Kind {
	case ui.HapticSelection:
		m.haptics.Selection()
		return m.ShowFlashInfo("selection")
	case ui.HapticNotification:
		m.haptics.Notify(b.Notification)
		text := fmt.Sprintf("notification: %s", b.Notification)
		switch b.Notification {
		case haptics.Success:
			return m.ShowFlashSuccess(text)
		case haptics.Warning:
			return m.ShowFlashWarning(text)
		default:
			return m.ShowFlashError(text)
		}
	default:
		m.haptics.Impact(b.Style)
		return m.ShowFlashInfo(fmt.Sprintf("impact: %s", b.Style))
	}
}

// barChrome places the bar as it is drawn right now.
func (m *Model) barChrome() ui.BarChrome {
	return ui.PlaceBar(m.core.Present(ui.CurrentTheme().Colors()), m.vc)
}

func (m *Model) handleMouseDown(msg tea.MouseClickMsg) tea.Cmd {
	if msg.Button != tea.MouseLeft || m.modal.IsVisible() {
		return nil
	}
	ch := m.barChrome()
	if !ch.Placement.Contains(msg.X, msg.Y) {
		if !m.screen.Scrollable() {
			if b, ok := m.screen.ButtonAt(msg.X, msg.Y-m.vc.HeaderHeight); ok {
				return m.fireButton(b)
			}
		}
		return nil
	}

	item := -1
	if ch.Content.Contains(msg.X, msg.Y) {
		if i, ok := m.tabBar().ItemAt(msg.X-ch.Content.X, ch.Content.Width); ok {
			item = i
		}
	}
	seq := m.core.Press(m.vc.ToPoints(msg.X, msg.Y))
	m.press = press{active: true, seq: seq, item: item}
	return m.scheduleLongPress(seq, m.core.Config().LongPressThreshold)
}

func (m *Model) handleMouseMove(msg tea.MouseMotionMsg) {
	if !m.press.active {
		return
	}
	m.core.Move(m.vc.ToPoints(msg.X, msg.Y))
}

func (m *Model) handleMouseUp() tea.Cmd {
	if !m.press.active {
		return nil
	}
	p := m.press
	m.press = press{item: -1}

	// A press that is still waiting for recognition was a tap.
	_, _, tap := m.core.PendingLongPress()
	target, dragged := m.core.Release()
	if dragged {
		m.log.Debug("released", "target", target.String())
		return nil
	}
	if tap && p.item >= 0 {
		m.pressTab(p.item)
	}
	return nil
}

func (m *Model) handleLongPress(msg LongPressMsg) tea.Cmd {
	if seq, due, ok := m.core.PendingLongPress(); ok && seq == msg.Seq && m.now().Before(due) {
		return m.scheduleLongPress(seq, due.Sub(m.now()))
	}
	if !m.core.LongPressDue(msg.Seq) {
		return nil
	}
	if m.press.item >= 0 && m.press.seq == msg.Seq {
		m.tabBar().LongPress(m.press.item)
	}
	return nil
}

func (m *Model) handleFrame(msg FrameMsg) tea.Cmd {
	var cmds []tea.Cmd
	if f := msg.Frame; f.Done && f.Target != m.lastTarget {
		m.lastTarget = f.Target
		cmds = append(cmds, m.ShowFlashInfo("tab bar "+f.Target.String()))
	} else if f.Done {
		m.lastTarget = f.Target
	}
	cmds = append(cmds, m.listenForFrames())
	return tea.Batch(cmds...)
}
