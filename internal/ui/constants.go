// Package ui provides constants for layout calculations.
package ui

// Layout constants
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// MinTerminalWidth is the narrowest terminal the layout is computed for
	MinTerminalWidth = 40

	// MinTerminalHeight is the shortest terminal the layout is computed for
	MinTerminalHeight = 12

	// MinBarWidth keeps a fully shrunk bar wide enough for its borders
	MinBarWidth = 8
)

// Bar chrome thresholds
const (
	// RoundedCornerRadius is the corner radius, in points, at which the bar
	// switches from square to rounded border glyphs.
	RoundedCornerRadius = 12

	// ShadowElevation is the elevation at which the bar casts a shadow.
	ShadowElevation = 10
)

// Modal sizing
const (
	// ModalWidth is the outer width of a modal dialog
	ModalWidth = 56

	// HelpModalMaxVisible is how many help rows show before the list pages
	HelpModalMaxVisible = 14
)
