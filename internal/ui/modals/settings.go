package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// SettingsState edits the settings that apply without rebuilding the tab
// bar: the theme and whether haptics fire.
type SettingsState struct {
	OriginalTheme   string
	OriginalHaptics bool

	theme   string
	haptics bool
	save    bool

	form *huh.Form
}

func (*SettingsState) modalState() {}

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "Tab: next field  Enter: apply  Esc: cancel"
}

func (s *SettingsState) Render() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		ModalTitleStyle.Render(s.Title()),
		s.form.View(),
		ModalHelpStyle.Render(s.Help()),
	)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// SetSize keeps the form inside the modal's padding.
func (s *SettingsState) SetSize(width, height int) {
	s.form.WithWidth(max(width-4, 20))
}

// Theme returns the selected theme.
func (s *SettingsState) Theme() string { return s.theme }

// Haptics reports whether haptics are switched on.
func (s *SettingsState) Haptics() bool { return s.haptics }

// Save reports whether the user asked to write the config file.
func (s *SettingsState) Save() bool { return s.save }

// Changed reports whether anything differs from when the modal opened.
func (s *SettingsState) Changed() bool {
	return s.theme != s.OriginalTheme || s.haptics != s.OriginalHaptics
}

// NewSettingsState builds the form. themes and themeNames are parallel:
// the stored value and its display name.
func NewSettingsState(themes, themeNames []string, currentTheme string, hapticsOn bool) *SettingsState {
	s := &SettingsState{
		OriginalTheme:   currentTheme,
		OriginalHaptics: hapticsOn,
		theme:           currentTheme,
		haptics:         hapticsOn,
	}

	options := make([]huh.Option[string], len(themes))
	for i := range themes {
		options[i] = huh.NewOption(themeNames[i], themes[i])
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(options...).
			Value(&s.theme),
		huh.NewConfirm().
			Title("Haptics").
			Description("Beep on long-press and selection").
			Affirmative("On").
			Negative("Off").
			Value(&s.haptics),
		huh.NewConfirm().
			Title("Save to config file").
			Affirmative("Yes").
			Negative("No").
			Value(&s.save),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(max(ModalWidth-4, 20)).
		WithLayout(huh.LayoutStack)

	s.form.Init()
	return s
}
