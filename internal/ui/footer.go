package ui

import (
	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"github.com/charmbracelet/x/ansi"
)

// KeyMap lists the shell's global bindings. It satisfies help.KeyMap.
type KeyMap struct {
	PrevTab  key.Binding
	NextTab  key.Binding
	JumpTab  key.Binding
	Float    key.Binding
	Scroll   key.Binding
	Theme    key.Binding
	Settings key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the shell's bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevTab: key.NewBinding(
			key.WithKeys("left", "shift+tab"),
			key.WithHelp("←", "prev tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("right", "tab"),
			key.WithHelp("→", "next tab"),
		),
		JumpTab: key.NewBinding(
			key.WithKeys("1", "2", "3", "4"),
			key.WithHelp("1-4", "jump"),
		),
		Float: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "float/dock"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy screen"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevTab, k.NextTab, k.JumpTab, k.Float, k.Scroll, k.Help, k.Quit}
}

// FullHelp returns the bindings grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevTab, k.NextTab, k.JumpTab},
		{k.Float, k.Scroll},
		{k.Theme, k.Settings, k.Copy, k.Help, k.Quit},
	}
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	keys         KeyMap
	extra        []key.Binding
	help         help.Model
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	f := &Footer{keys: DefaultKeyMap(), help: help.New()}
	f.restyle()
	return f
}

// restyle copies the current theme into the help model.
func (f *Footer) restyle() {
	f.help.ShortSeparator = " | "
	f.help.Styles.ShortKey = FooterKeyStyle
	f.help.Styles.ShortDesc = FooterDescStyle
	f.help.Styles.ShortSeparator = FooterSepStyle
}

// Keys returns the footer's key map.
func (f *Footer) Keys() KeyMap {
	return f.keys
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetExtra shows screen-specific bindings ahead of the global ones.
func (f *Footer) SetExtra(bindings ...key.Binding) {
	f.extra = bindings
}

// View renders the footer
func (f *Footer) View() string {
	var content string
	if f.flashMessage != nil {
		content = f.renderFlash()
	} else {
		f.restyle()
		bindings := append(append([]key.Binding{}, f.extra...), f.keys.ShortHelp()...)
		content = f.help.ShortHelpView(bindings)
	}

	// Padding(0, 1) takes a column from each side
	if inner := f.width - 2; inner > 0 && ansi.StringWidth(content) > inner {
		content = ansi.Truncate(content, inner, "…")
	}
	return FooterStyle.Width(f.width).Render(content)
}
