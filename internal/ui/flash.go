package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// FlashType selects a flash message's icon and color.
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a flash stays in the footer.
const DefaultFlashDuration = 3 * time.Second

// flashTickInterval is how often an active flash checks for expiry.
const flashTickInterval = 500 * time.Millisecond

// FlashMessage temporarily replaces the footer's key help.
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration.
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) >= f.Duration
}

func (t FlashType) icon() string {
	switch t {
	case FlashSuccess:
		return "✓"
	case FlashWarning:
		return "⚠"
	case FlashError:
		return "✕"
	default:
		return "ℹ"
	}
}

func (t FlashType) style() lipgloss.Style {
	switch t {
	case FlashSuccess:
		return lipgloss.NewStyle().Foreground(ColorSuccess)
	case FlashWarning:
		return lipgloss.NewStyle().Foreground(ColorWarning)
	case FlashError:
		return lipgloss.NewStyle().Foreground(ColorError)
	default:
		return lipgloss.NewStyle().Foreground(ColorPrimary)
	}
}

// FlashTickMsg asks the app to check whether the flash expired.
type FlashTickMsg time.Time

// FlashTick schedules the next expiry check.
func FlashTick() tea.Cmd {
	return tea.Tick(flashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// SetFlash shows a message for DefaultFlashDuration.
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a message for the given duration.
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes the current flash.
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash is showing.
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// Flash returns the current flash, or nil.
func (f *Footer) Flash() *FlashMessage {
	return f.flashMessage
}

// ClearIfExpired clears an expired flash and reports whether it did.
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

func (f *Footer) renderFlash() string {
	m := f.flashMessage
	return m.Type.style().Render(m.Type.icon() + " " + m.Text)
}
