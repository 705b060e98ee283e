package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/pillbar/internal/haptics"
)

// Route names the screen view knows how to draw.
const (
	ScreenHome     = "home"
	ScreenFavorite = "favorite"
	ScreenSearch   = "search"
	ScreenProfile  = "profile"
)

// FeedSize is the number of placeholder tiles in the home feed.
const FeedSize = 50

// HapticKind is the family of a demo button.
type HapticKind int

const (
	HapticSelection HapticKind = iota
	HapticNotification
	HapticImpact
)

// HapticButton is one button on the favorite screen.
type HapticButton struct {
	Label        string
	Kind         HapticKind
	Notification haptics.Notification
	Style        haptics.Style

	rect Placement // relative to the screen's top-left cell
}

type hapticGroup struct {
	caption string
	buttons []HapticButton
}

func hapticGroups() []hapticGroup {
	return []hapticGroup{
		{caption: "Haptics.selection", buttons: []HapticButton{
			{Label: "Selection", Kind: HapticSelection},
		}},
		{caption: "Haptics.notification", buttons: []HapticButton{
			{Label: "Success", Kind: HapticNotification, Notification: haptics.Success},
			{Label: "Error", Kind: HapticNotification, Notification: haptics.Error},
			{Label: "Warning", Kind: HapticNotification, Notification: haptics.Warning},
		}},
		{caption: "Haptics.impact", buttons: []HapticButton{
			{Label: "Light", Kind: HapticImpact, Style: haptics.Light},
			{Label: "Medium", Kind: HapticImpact, Style: haptics.Medium},
			{Label: "Heavy", Kind: HapticImpact, Style: haptics.Heavy},
		}},
	}
}

// screenPadding is the left padding of ScreenStyle.
const screenPadding = 2

// ScreenView draws the focused tab's screen in a scrollable viewport.
type ScreenView struct {
	viewport      viewport.Model
	route         string
	title         string
	width         int
	height        int
	bottomPadding int
	buttons       []HapticButton
	selected      int
}

// NewScreenView creates an empty screen view.
func NewScreenView() *ScreenView {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	return &ScreenView{viewport: vp}
}

// SetSize sets the area the screen fills.
func (s *ScreenView) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.viewport.SetWidth(width)
	s.viewport.SetHeight(height)
	s.rebuild()
}

// SetBottomPadding reserves rows at the end of scrollable content so the
// docked bar never hides the last lines.
func (s *ScreenView) SetBottomPadding(rows int) {
	if rows == s.bottomPadding {
		return
	}
	s.bottomPadding = rows
	s.rebuild()
}

// SetRoute switches the screen and scrolls to the top.
func (s *ScreenView) SetRoute(route, title string) {
	if route == s.route && title == s.title {
		return
	}
	s.route = route
	s.title = title
	s.selected = 0
	s.rebuild()
	s.viewport.GotoTop()
}

// Route returns the route currently drawn.
func (s *ScreenView) Route() string {
	return s.route
}

// Refresh re-renders the content, after a theme change.
func (s *ScreenView) Refresh() {
	s.rebuild()
}

// GotoTop scrolls the screen back to its first line.
func (s *ScreenView) GotoTop() {
	s.viewport.GotoTop()
}

// AtTop reports whether the screen shows its first line.
func (s *ScreenView) AtTop() bool {
	return s.viewport.AtTop()
}

// Scrollable reports whether scroll input should reach the viewport.
func (s *ScreenView) Scrollable() bool {
	return s.route != ScreenFavorite
}

// Update forwards scroll keys and wheel events to the viewport.
func (s *ScreenView) Update(msg tea.Msg) tea.Cmd {
	if !s.Scrollable() {
		return nil
	}
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return cmd
}

// Buttons returns the favorite screen's haptic buttons.
func (s *ScreenView) Buttons() []HapticButton {
	return s.buttons
}

// Selected returns the focused button index on the favorite screen.
func (s *ScreenView) Selected() int {
	return s.selected
}

// MoveSelection moves button focus by delta, wrapping around.
func (s *ScreenView) MoveSelection(delta int) {
	if len(s.buttons) == 0 {
		return
	}
	s.selected = ((s.selected+delta)%len(s.buttons) + len(s.buttons)) % len(s.buttons)
	s.rebuild()
}

// SelectedButton returns the focused button.
func (s *ScreenView) SelectedButton() (HapticButton, bool) {
	if s.selected < 0 || s.selected >= len(s.buttons) {
		return HapticButton{}, false
	}
	return s.buttons[s.selected], true
}

// ButtonAt returns the button under a cell relative to the screen.
func (s *ScreenView) ButtonAt(col, row int) (HapticButton, bool) {
	for i, b := range s.buttons {
		if b.rect.Contains(col, row) {
			s.selected = i
			s.rebuild()
			return b, true
		}
	}
	return HapticButton{}, false
}

// View renders the screen.
func (s *ScreenView) View() string {
	bg := lipgloss.NewStyle().Background(ColorBackground)
	return bg.Render(FitBlock(s.viewport.View(), s.width, s.height))
}

func (s *ScreenView) rebuild() {
	if s.width <= 0 {
		return
	}
	var content string
	switch s.route {
	case ScreenHome:
		content = s.feed()
	case ScreenFavorite:
		content = s.favorite()
	default:
		s.buttons = nil
		content = s.placeholder()
	}
	if s.route != ScreenFavorite {
		s.buttons = nil
	}
	if s.bottomPadding > 0 {
		content += strings.Repeat("\n", s.bottomPadding)
	}
	s.viewport.SetContent(content)
}

// placeholder centers the tab's name, for the static screens.
func (s *ScreenView) placeholder() string {
	text := ScreenTextStyle.Render("Tab " + s.title)
	return lipgloss.Place(s.width, max(s.height-s.bottomPadding, 1), lipgloss.Center, lipgloss.Center, text)
}

// feed lays the placeholder tiles out as a two-column masonry grid,
// alternating tiles between the columns.
func (s *ScreenView) feed() string {
	gap := 1
	colWidth := (s.width - 2*screenPadding - gap) / 2
	if colWidth < 6 {
		colWidth = max(s.width-2*screenPadding, 6)
		return ScreenStyle.Render(lipgloss.JoinVertical(lipgloss.Left, s.tiles(colWidth, 0, 1)...))
	}
	left := lipgloss.JoinVertical(lipgloss.Left, s.tiles(colWidth, 0, 2)...)
	right := lipgloss.JoinVertical(lipgloss.Left, s.tiles(colWidth, 1, 2)...)
	return ScreenStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right))
}

func (s *ScreenView) tiles(width, start, step int) []string {
	var out []string
	for i := start; i < FeedSize; i += step {
		w, h := tileSize(i)
		// Keep the tile's aspect ratio; a row is about twice as tall as a column.
		rows := max(int(float64(width)*float64(h)/float64(w)/2), 3)
		label := fmt.Sprintf("picsum #%d\n%d×%d", i+250, w, h)
		// Border glyphs take a column on each side.
		out = append(out, TileStyle.Width(width-2).Height(rows-2).Render(label))
	}
	return out
}

// tileSize returns a deterministic image size for feed item i.
func tileSize(i int) (w, h int) {
	sizes := [][2]int{
		{5000, 3333}, {3000, 4000}, {4000, 4000}, {2400, 3600},
		{5616, 3744}, {3264, 4912}, {4288, 2848}, {2000, 3000},
	}
	sz := sizes[i%len(sizes)]
	return sz[0], sz[1]
}

// favorite renders the haptics demo and records where each button lands.
func (s *ScreenView) favorite() string {
	groups := hapticGroups()
	s.buttons = s.buttons[:0]

	var rows []string
	row := 0
	idx := 0
	for _, g := range groups {
		rows = append(rows, ScreenTextStyle.Render(g.caption))
		row++

		var rendered []string
		col := screenPadding
		for _, b := range g.buttons {
			style := ButtonStyle
			if idx == s.selected {
				style = ButtonFocusStyle
			}
			btn := style.Render(b.Label)
			w, h := lipgloss.Width(btn), lipgloss.Height(btn)
			b.rect = Placement{X: col, Y: row, Width: w, Height: h}
			s.buttons = append(s.buttons, b)
			rendered = append(rendered, btn, " ")
			col += w + 1
			idx++
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
		rows = append(rows, line, "")
		row += lipgloss.Height(line) + 1
	}
	return lipgloss.NewStyle().PaddingLeft(screenPadding).Render(strings.Join(rows, "\n"))
}
