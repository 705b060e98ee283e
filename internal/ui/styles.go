package ui

import (
	"charm.land/lipgloss/v2"
	"github.com/zhubert/pillbar/internal/ui/modals"
)

// Color palette, regenerated by SetTheme
var (
	ColorPrimary    = lipgloss.Color(BuiltinThemes[DefaultTheme].Primary)
	ColorBackground = lipgloss.Color(BuiltinThemes[DefaultTheme].Background)
	ColorCard       = lipgloss.Color(BuiltinThemes[DefaultTheme].Card)
	ColorText       = lipgloss.Color(BuiltinThemes[DefaultTheme].Text)
	ColorTextMuted  = lipgloss.Color(BuiltinThemes[DefaultTheme].TextMuted)
	ColorBorder     = lipgloss.Color(BuiltinThemes[DefaultTheme].Border)
	ColorInactive   = lipgloss.Color(BuiltinThemes[DefaultTheme].Inactive)
	ColorSuccess    = lipgloss.Color(BuiltinThemes[DefaultTheme].Success)
	ColorWarning    = lipgloss.Color(BuiltinThemes[DefaultTheme].Warning)
	ColorError      = lipgloss.Color(BuiltinThemes[DefaultTheme].Error)
)

// Header styles
var (
	HeaderStyle      lipgloss.Style
	HeaderTitleStyle lipgloss.Style
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
	FooterSepStyle  lipgloss.Style
)

// Screen styles
var (
	ScreenStyle      lipgloss.Style
	ScreenTitleStyle lipgloss.Style
	ScreenTextStyle  lipgloss.Style
	ScreenMutedStyle lipgloss.Style
	TileStyle        lipgloss.Style
	ButtonStyle      lipgloss.Style
	ButtonFocusStyle lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

// Bar chrome styles
var (
	BarShadowStyle lipgloss.Style
	BarBorderStyle lipgloss.Style
)

func init() {
	buildStyles()
}

// buildStyles derives every style from the color palette.
func buildStyles() {
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	FooterSepStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	ScreenStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 2)

	ScreenTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ScreenTextStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	ScreenMutedStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	TileStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Foreground(ColorTextMuted).
		Align(lipgloss.Center, lipgloss.Center)

	ButtonStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Foreground(ColorText).
		Padding(0, 1)

	ButtonFocusStyle = ButtonStyle.
		BorderForeground(ColorPrimary).
		Foreground(ColorPrimary).
		Bold(true)

	BarShadowStyle = lipgloss.NewStyle().
		Foreground(ColorBorder).
		Faint(true)

	BarBorderStyle = lipgloss.NewStyle().
		BorderForeground(ColorBorder)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Background(ColorCard).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		MarginTop(1)

	modals.SetStyles(
		ModalTitleStyle, ModalHelpStyle,
		ColorPrimary, ColorSuccess, ColorText, ColorTextMuted, ColorBackground, ColorWarning,
		ModalWidth-6, HelpModalMaxVisible,
	)
}
