package modals

import (
	"fmt"
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// helpKeyWidth is the column the shortcut descriptions start at.
const helpKeyWidth = 12

// shortcutItem wraps a HelpShortcut for the bubbles list.
type shortcutItem struct {
	shortcut HelpShortcut
}

func (i shortcutItem) FilterValue() string {
	return i.shortcut.Key + " " + i.shortcut.Desc
}

// sectionItem is a heading. It never matches a filter.
type sectionItem struct {
	title string
}

func (i sectionItem) FilterValue() string { return "" }

type helpDelegate struct{}

func (helpDelegate) Height() int                             { return 1 }
func (helpDelegate) Spacing() int                            { return 0 }
func (helpDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (helpDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	switch i := item.(type) {
	case sectionItem:
		fmt.Fprint(w, lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary).Render(i.title))

	case shortcutItem:
		keyStyle := lipgloss.NewStyle().Bold(true).Width(helpKeyWidth).Foreground(ColorPrimary)
		descStyle := lipgloss.NewStyle().Foreground(ColorText)
		if i.shortcut.Trigger == "" {
			descStyle = descStyle.Foreground(ColorTextMuted)
		}
		prefix := "  "
		if index == m.Index() {
			keyStyle = keyStyle.Foreground(ColorTextInverse).Background(ColorPrimary)
			descStyle = descStyle.Foreground(ColorTextInverse).Background(ColorPrimary)
			prefix = "> "
		}
		fmt.Fprint(w, prefix+keyStyle.Render(i.shortcut.Key)+descStyle.Render(i.shortcut.Desc))
	}
}

// HelpState lists the keyboard shortcuts. Picking one replays it.
type HelpState struct {
	list list.Model
}

func (*HelpState) modalState() {}

func (s *HelpState) Title() string { return "Keyboard Shortcuts" }

func (s *HelpState) Help() string {
	if s.list.SettingFilter() {
		return "Type to filter  Enter: apply  Esc: cancel"
	}
	return "/: filter  ↑/↓: navigate  Enter: run  Esc: close"
}

func (s *HelpState) Render() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		ModalTitleStyle.Render(s.Title()),
		s.list.View(),
		ModalHelpStyle.Render(s.Help()),
	)
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

// SetSize fits the list below the title and above the help line.
func (s *HelpState) SetSize(width, height int) {
	const overhead = 4
	s.list.SetSize(width, max(height-overhead, 1))
}

// SelectedShortcut returns the highlighted shortcut, or nil when a heading
// is highlighted or the filter matched nothing.
func (s *HelpState) SelectedShortcut() *HelpShortcut {
	if si, ok := s.list.SelectedItem().(shortcutItem); ok {
		return &si.shortcut
	}
	return nil
}

// IsFiltering reports whether the user is typing a filter, in which case
// Enter and Esc belong to the list.
func (s *HelpState) IsFiltering() bool {
	return s.list.SettingFilter()
}

// Trigger returns a command replaying the selected shortcut, or nil.
func (s *HelpState) Trigger() tea.Cmd {
	sc := s.SelectedShortcut()
	if sc == nil || sc.Trigger == "" {
		return nil
	}
	k := sc.Trigger
	return func() tea.Msg { return HelpShortcutTriggeredMsg{Key: k} }
}

// NewHelpState builds the modal from sections, selecting the first shortcut.
func NewHelpState(sections []HelpSection) *HelpState {
	var items []list.Item
	for _, section := range sections {
		items = append(items, sectionItem{title: section.Title})
		for _, sc := range section.Shortcuts {
			items = append(items, shortcutItem{shortcut: sc})
		}
	}

	l := list.New(items, helpDelegate{}, ModalWidth, max(HelpModalMaxVisible, 1))
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.SetFilteringEnabled(true)

	for i, item := range items {
		if _, ok := item.(shortcutItem); ok {
			l.Select(i)
			break
		}
	}
	return &HelpState{list: l}
}
