// Package modals provides modal dialog state types for the UI.
// Each modal type implements the ModalState interface with its own state struct,
// so the app can reach modal-specific fields with a type switch.
package modals

import (
	tea "charm.land/bubbletea/v2"
)

// ModalState is a discriminated union interface for modal-specific state.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// ModalWithSize is implemented by modals whose content follows the space
// the host gives them.
type ModalWithSize interface {
	ModalState
	SetSize(width, height int)
}

// ModalWithPreferredWidth is an optional interface that modals can implement
// to specify a custom width. If not implemented, ModalWidth is used.
type ModalWithPreferredWidth interface {
	ModalState
	PreferredWidth() int
}

// HelpShortcut represents a single keyboard shortcut for display
type HelpShortcut struct {
	Key     string // what the help shows, e.g. "←"
	Desc    string
	Trigger string // key string replayed when chosen; empty is display only
}

// HelpSection represents a group of related shortcuts
type HelpSection struct {
	Title     string
	Shortcuts []HelpShortcut
}

// HelpShortcutTriggeredMsg is sent when the user picks a shortcut in the
// help modal.
type HelpShortcutTriggeredMsg struct {
	Key string // key string to replay, e.g. "f" or "right"
}
