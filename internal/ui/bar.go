package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/zhubert/pillbar/internal/gesture"
	"github.com/zhubert/pillbar/internal/tabbar"
)

// Placement is a rectangle of terminal cells.
type Placement struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (col, row) is inside the rectangle.
func (p Placement) Contains(col, row int) bool {
	return col >= p.X && col < p.X+p.Width && row >= p.Y && row < p.Y+p.Height
}

// BarChrome is a presentation resolved onto the terminal grid.
type BarChrome struct {
	Placement Placement

	// Content is the rectangle holding the tab items.
	Content Placement

	Rounded     bool
	Shadow      bool
	Active      bool
	Background  string // resolved; never transparent when Blur is set
	PaddingRows int
}

// PlaceBar converts a presentation in points into cells. The docked bar
// sits directly above the footer; the drag offset moves it from there.
func PlaceBar(p gesture.Presentation, vc *ViewContext) BarChrome {
	termW, termH := vc.TerminalWidth, vc.TerminalHeight

	width := min(max(vc.Columns(p.Width), MinBarWidth), termW)
	x := min(max(vc.Columns(p.Left()), 0), termW-width)

	rounded := p.CornerRadius >= RoundedCornerRadius
	padding := max(vc.Rows(p.BottomPadding), 0)

	borderRows, borderCols := 1, 0
	if rounded {
		borderRows, borderCols = 2, 2
	}
	height := tabbar.Height + borderRows + padding

	y := termH - vc.FooterHeight - height + vc.Rows(p.Offset.Y)
	y = min(max(y, vc.HeaderHeight), termH-height)

	bg := p.Background
	if bg == "" && p.Blur {
		bg = frostedBackground()
	}

	return BarChrome{
		Placement: Placement{X: x, Y: y, Width: width, Height: height},
		Content: Placement{
			X:      x + borderCols/2,
			Y:      y + 1,
			Width:  width - borderCols,
			Height: tabbar.Height,
		},
		Rounded:     rounded,
		Shadow:      p.Elevation >= ShadowElevation,
		Active:      p.Active,
		Background:  bg,
		PaddingRows: padding,
	}
}

// frostedBackground stands in for the blur layer under a transparent bar:
// terminal cells have no alpha, so the layer is drawn as a flat blend of
// the card and screen colors.
func frostedBackground() string {
	t := CurrentTheme()
	return mixHex(t.Card, t.Background, 0.5)
}

// RenderBar draws the bar's chrome around the tab items.
func RenderBar(ch BarChrome, items tabbar.Bar) string {
	inner := ch.Content.Width
	rows := []string{items.View(inner, ch.Background)}

	fill := lipgloss.NewStyle()
	if ch.Background != "" {
		fill = fill.Background(lipgloss.Color(ch.Background))
	}
	for range ch.PaddingRows {
		rows = append(rows, fill.Render(strings.Repeat(" ", inner)))
	}
	body := FitBlock(strings.Join(rows, "\n"), inner, tabbar.Height+ch.PaddingRows)

	border := BarBorderStyle
	if ch.Active {
		border = border.BorderForeground(ColorPrimary)
	}
	if ch.Rounded {
		border = border.Border(lipgloss.RoundedBorder())
	} else {
		border = border.Border(lipgloss.NormalBorder(), true, false, false, false)
	}
	if ch.Background != "" {
		border = border.BorderBackground(lipgloss.Color(ch.Background))
	}
	return border.Render(body)
}

// ComposeBar draws the bar, and its shadow when elevated, over the screen.
func ComposeBar(base, bar string, ch BarChrome, width, height int) string {
	p := ch.Placement
	if ch.Shadow {
		shade := strings.Repeat("░", p.Width)
		lines := make([]string, p.Height)
		for i := range lines {
			lines[i] = BarShadowStyle.Render(shade)
		}
		base = OverlayAt(base, strings.Join(lines, "\n"), p.X+1, p.Y+1, width, height)
	}
	return OverlayAt(base, bar, p.X, p.Y, width, height)
}
