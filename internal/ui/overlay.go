package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// OverlayAt composites overlay on top of base with its top-left cell at
// (x, y). Both are treated as line grids of the given width and height;
// overlay cells outside the grid are dropped.
func OverlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitLines(base)
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	overlayLines := splitLines(overlay)
	overlayWidth := maxLineWidth(overlayLines)

	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRight(baseLines[row], width)

		col := x
		overlayLine := padRight(line, overlayWidth)
		if col < 0 {
			overlayLine = ansi.TruncateLeft(overlayLine, -col, "")
			col = 0
		}
		if col >= width {
			continue
		}
		if ansi.StringWidth(overlayLine) > width-col {
			overlayLine = ansi.Truncate(overlayLine, width-col, "")
		}

		left := ansi.Truncate(target, col, "")
		if lw := ansi.StringWidth(left); lw < col {
			left += strings.Repeat(" ", col-lw)
		}
		pos := col + ansi.StringWidth(overlayLine)
		right := ansi.TruncateLeft(target, pos, "")
		if gap := width - pos - ansi.StringWidth(right); gap > 0 {
			right = strings.Repeat(" ", gap) + right
		}

		baseLines[row] = left + overlayLine + right
	}
	return strings.Join(baseLines, "\n")
}

// FitBlock pads or cuts content to exactly width x height cells.
func FitBlock(content string, width, height int) string {
	lines := splitLines(content)
	out := make([]string, height)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		if ansi.StringWidth(line) > width {
			line = ansi.Truncate(line, width, "")
		}
		out[i] = padRight(line, width)
	}
	return strings.Join(out, "\n")
}

// splitLines splits a string on newlines, returning at least one element.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// maxLineWidth returns the visual width of the widest line.
func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

// padRight pads s with spaces so its visual width equals width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
