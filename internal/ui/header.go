package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Header represents the top header bar
type Header struct {
	width  int
	title  string
	status string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetTitle sets the focused screen's title
func (h *Header) SetTitle(title string) {
	h.title = title
}

// SetStatus sets the right-aligned status text, the bar's phase
func (h *Header) SetStatus(status string) {
	h.status = status
}

// View renders the header
func (h *Header) View() string {
	titleText := " pillbar"
	if h.title != "" {
		titleText += " · " + h.title
	}
	rightText := ""
	if h.status != "" {
		rightText = h.status + " "
	}

	paddingLen := h.width - ansi.StringWidth(titleText) - ansi.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText
	if h.width > 0 {
		fullContent = ansi.Truncate(fullContent, h.width, "")
	}
	return h.renderGradient(fullContent, len([]rune(" pillbar")))
}

// parseHexColor parses a hex color string (e.g., "#0A84FF") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// mixHex blends two hex colors; t=0 is a, t=1 is b.
func mixHex(a, b string, t float64) string {
	ar, ag, ab := parseHexColor(a)
	br, bg, bb := parseHexColor(b)
	return fmt.Sprintf("#%02X%02X%02X",
		int(float64(ar)*(1-t)+float64(br)*t),
		int(float64(ag)*(1-t)+float64(bg)*t),
		int(float64(ab)*(1-t)+float64(bb)*t))
}

// renderGradient renders the content on a gradient from the primary color
// to the screen background. The first boldLen runes are bold.
func (h *Header) renderGradient(content string, boldLen int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	textColor := lipgloss.Color(theme.Text)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)
		bgColor := lipgloss.Color(mixHex(theme.Primary, theme.Background, t))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Foreground(textColor).
			Bold(i < boldLen)

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
