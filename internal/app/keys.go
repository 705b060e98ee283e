package app

import "charm.land/bubbles/v2/key"

// Bindings shown only on the haptics screen.
var (
	selectBinding = key.NewBinding(
		key.WithKeys("up", "down"),
		key.WithHelp("↑/↓", "select"),
	)
	fireBinding = key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("enter", "feel it"),
	)
)
