package modals

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Style variables, set by the parent ui package through SetStyles whenever
// the theme changes.
var (
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style

	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorWarning     color.Color

	ModalWidth          int
	HelpModalMaxVisible int
)

// SetStyles copies the parent package's styles. It must run before any
// modal renders.
func SetStyles(
	modalTitle, modalHelp lipgloss.Style,
	primary, secondary, text, textMuted, textInverse, warning color.Color,
	modalWidth, helpMaxVisible int,
) {
	ModalTitleStyle = modalTitle
	ModalHelpStyle = modalHelp

	ColorPrimary = primary
	ColorSecondary = secondary
	ColorText = text
	ColorTextMuted = textMuted
	ColorTextInverse = textInverse
	ColorWarning = warning

	ModalWidth = modalWidth
	HelpModalMaxVisible = helpMaxVisible
}
