package app

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	perrors "github.com/zhubert/pillbar/internal/errors"
	"github.com/zhubert/pillbar/internal/keys"
	"github.com/zhubert/pillbar/internal/ui"
	"github.com/zhubert/pillbar/internal/ui/modals"
)

// hapticsSwitch is implemented by feedback that can be muted at runtime.
type hapticsSwitch interface {
	SetEnabled(enabled bool)
}

// handleModalKey routes keys while a modal is open. Enter and Esc are
// handled here; everything else goes to the modal.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) tea.Cmd {
	switch s := m.modal.State.(type) {
	case *modals.HelpState:
		if s.IsFiltering() {
			return m.modal.Update(msg)
		}
		switch {
		case msg.String() == keys.Escape, key.Matches(msg, m.footer.Keys().Help):
			m.modal.Hide()
			return nil
		case msg.String() == keys.Enter:
			cmd := s.Trigger()
			m.modal.Hide()
			return cmd
		}

	case *modals.SettingsState:
		switch msg.String() {
		case keys.Escape:
			m.modal.Hide()
			return nil
		case keys.Enter:
			return m.applySettings(s)
		}
	}
	return m.modal.Update(msg)
}

// newSettings opens the settings form on the current values.
func (m *Model) newSettings() *modals.SettingsState {
	names := ui.ThemeNames()
	values := make([]string, len(names))
	labels := make([]string, len(names))
	for i, n := range names {
		values[i] = string(n)
		labels[i] = ui.GetTheme(n).Name
	}
	return modals.NewSettingsState(values, labels, string(ui.CurrentThemeName()), m.cfg.HapticsEnabled())
}

// applySettings commits the settings form and closes it.
func (m *Model) applySettings(s *modals.SettingsState) tea.Cmd {
	if ui.ThemeName(s.Theme()) != ui.CurrentThemeName() {
		m.setTheme(ui.ThemeName(s.Theme()))
	}
	m.cfg.SetHaptics(s.Haptics())
	if sw, ok := m.haptics.(hapticsSwitch); ok {
		sw.SetEnabled(s.Haptics())
	}
	m.log.Debug("settings applied", "theme", s.Theme(), "haptics", s.Haptics())

	if s.Save() {
		if err := m.cfg.Save(); err != nil {
			m.log.Warn("saving settings failed", "error", err, "kind", perrors.GetKind(err).String())
			m.modal.SetError(saveErrorText(err))
			return nil
		}
		m.modal.Hide()
		return m.ShowFlashSuccess("settings saved")
	}
	m.modal.Hide()
	if !s.Changed() {
		return nil
	}
	return m.ShowFlashInfo("settings applied")
}

// saveErrorText is the modal's message for a failed config save.
func saveErrorText(err error) string {
	if perrors.Is(err, perrors.KindPermission) {
		return "config file is not writable"
	}
	return fmt.Sprintf("save failed: %v", err)
}

// helpSections describes the shortcuts, replaying the ones a key can
// trigger.
func (m *Model) helpSections() []modals.HelpSection {
	km := m.footer.Keys()
	bound := func(b key.Binding) modals.HelpShortcut {
		h := b.Help()
		return modals.HelpShortcut{Key: h.Key, Desc: h.Desc, Trigger: b.Keys()[0]}
	}

	tabs := []modals.HelpShortcut{bound(km.PrevTab), bound(km.NextTab)}
	for i, r := range m.nav.State().Routes {
		if i >= len(km.JumpTab.Keys()) {
			break
		}
		k := km.JumpTab.Keys()[i]
		tabs = append(tabs, modals.HelpShortcut{Key: k, Desc: r.DisplayLabel(), Trigger: k})
	}

	return []modals.HelpSection{
		{Title: "Tabs", Shortcuts: tabs},
		{Title: "Tab bar", Shortcuts: []modals.HelpShortcut{
			bound(km.Float),
			{Key: "hold", Desc: "long-press the bar to pick it up"},
			{Key: "drag ↑", Desc: "release past the threshold to float"},
			{Key: "drag ↓", Desc: "release near the bottom to dock"},
		}},
		{Title: "App", Shortcuts: []modals.HelpShortcut{
			{Key: km.Scroll.Help().Key, Desc: km.Scroll.Help().Desc},
			bound(km.Theme),
			bound(km.Settings),
			bound(km.Copy),
			bound(km.Quit),
		}},
	}
}
