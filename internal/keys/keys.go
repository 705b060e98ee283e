// Package keys provides string constants for Bubble Tea v2 key press events.
//
// These constants are derived from tea.KeyPressMsg{Code: tea.KeyXxx}.String()
// and are guaranteed to match the actual runtime values. Using these constants
// instead of hardcoded strings prevents typo bugs (e.g., "escape" vs "esc").
//
// Single-character keys like "f", "q", "1" are not included here because they
// are unambiguous.
package keys

import tea "charm.land/bubbletea/v2"

// Navigation keys
var (
	Up     = tea.KeyPressMsg{Code: tea.KeyUp}.String()     // "up"
	Down   = tea.KeyPressMsg{Code: tea.KeyDown}.String()   // "down"
	Left   = tea.KeyPressMsg{Code: tea.KeyLeft}.String()   // "left"
	Right  = tea.KeyPressMsg{Code: tea.KeyRight}.String()  // "right"
	PgUp   = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()   // "pgup"
	PgDown = tea.KeyPressMsg{Code: tea.KeyPgDown}.String() // "pgdown"
)

// Action keys
var (
	Enter    = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                    // "enter"
	Tab      = tea.KeyPressMsg{Code: tea.KeyTab}.String()                      // "tab"
	ShiftTab = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String() // "shift+tab"
	Space    = tea.KeyPressMsg{Code: tea.KeySpace}.String()                    // "space"
	Escape   = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                   // "esc"
)

// Ctrl combinations
var (
	CtrlC = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String() // "ctrl+c"
	CtrlT = (tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}).String() // "ctrl+t"
)

// Press builds the key press event whose String() is s. It is the inverse
// of KeyPressMsg.String for the keys above and single characters.
func Press(s string) tea.KeyPressMsg {
	switch s {
	case Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case Escape, "escape":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case Left:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case Right:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case PgUp:
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case PgDown:
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case Space:
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case CtrlT:
		return tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}
	}
	if r := []rune(s); len(r) == 1 {
		return tea.KeyPressMsg{Code: r[0], Text: s}
	}
	return tea.KeyPressMsg{Text: s}
}
