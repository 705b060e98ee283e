// Package ui provides theme management for the application.
// A theme is the palette the navigator hands to the tab bar, plus the
// colors the screens and chrome are drawn with.
package ui

import (
	"slices"

	"charm.land/lipgloss/v2"
	"github.com/zhubert/pillbar/internal/gesture"
)

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Navigation colors handed to the tab bar
	Primary    string // Focused tab tint, accents
	Background string // Screen background
	Card       string // Docked bar background
	Text       string // Primary text
	Border     string // Hairlines; active solid bar background

	// Inactive is the tint of unfocused tab items
	Inactive string

	TextMuted string // Secondary text

	// Semantic colors used by the haptics demo buttons
	Success string
	Warning string
	Error   string
}

// Colors returns the subset of the theme the gesture core switches between.
func (t Theme) Colors() gesture.Colors {
	return gesture.Colors{
		Primary: t.Primary,
		Card:    t.Card,
		Border:  t.Border,
		Text:    t.Text,
	}
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeDark  ThemeName = "dark"
	ThemeLight ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDark

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDark: {
		Name:       "Dark",
		Primary:    "#0A84FF",
		Background: "#010101",
		Card:       "#121212",
		Text:       "#E5E5E7",
		Border:     "#272729",
		Inactive:   "#757575",
		TextMuted:  "#8E8E93",
		Success:    "#30D158",
		Warning:    "#FFD60A",
		Error:      "#FF453A",
	},
	ThemeLight: {
		Name:       "Light",
		Primary:    "#007AFF",
		Background: "#F2F2F2",
		Card:       "#FFFFFF",
		Text:       "#1C1C1E",
		Border:     "#D8D8D8",
		Inactive:   "#666666",
		TextMuted:  "#6C6C70",
		Success:    "#34C759",
		Warning:    "#FF9500",
		Error:      "#FF3B30",
	},
}

// currentTheme holds the active theme name
var currentTheme = DefaultTheme

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return GetTheme(currentTheme)
}

// CurrentThemeName returns the name of the currently active theme
func CurrentThemeName() ThemeName {
	return currentTheme
}

// SetTheme changes the active theme and regenerates all styles.
// Unknown names select the default theme.
func SetTheme(name ThemeName) {
	if _, ok := BuiltinThemes[name]; !ok {
		name = DefaultTheme
	}
	currentTheme = name
	regenerateStyles()
}

// ThemeNames returns all theme names in sorted order.
func ThemeNames() []ThemeName {
	names := make([]ThemeName, 0, len(BuiltinThemes))
	for name := range BuiltinThemes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// regenerateStyles updates all style variables based on the current theme.
func regenerateStyles() {
	t := CurrentTheme()

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorBackground = lipgloss.Color(t.Background)
	ColorCard = lipgloss.Color(t.Card)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorBorder = lipgloss.Color(t.Border)
	ColorInactive = lipgloss.Color(t.Inactive)
	ColorSuccess = lipgloss.Color(t.Success)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorError = lipgloss.Color(t.Error)

	buildStyles()
}
