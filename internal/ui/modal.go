package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/zhubert/pillbar/internal/ui/modals"
)

// Modal is a popup dialog drawn over the frame. State is nil when no modal
// is visible.
type Modal struct {
	State modals.ModalState
	error string
}

// NewModal creates a hidden modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state, sized for the terminal.
func (m *Modal) Show(state modals.ModalState, screenHeight int) {
	m.State = state
	m.error = ""
	if s, ok := state.(modals.ModalWithSize); ok {
		// Border and padding take 6 columns and 4 rows; keep 2 rows of
		// frame visible above and below
		s.SetSize(m.width()-6, max(screenHeight-8, 1))
	}
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError shows an error line under the modal content.
func (m *Modal) SetError(err string) {
	m.error = err
}

// Error returns the current error message.
func (m *Modal) Error() string {
	return m.error
}

// Update delegates to the current state.
func (m *Modal) Update(msg tea.Msg) tea.Cmd {
	if m.State == nil {
		return nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return cmd
}

func (m *Modal) width() int {
	if p, ok := m.State.(modals.ModalWithPreferredWidth); ok {
		return p.PreferredWidth()
	}
	return ModalWidth
}

// Render composites the modal, centered, over frame.
func (m *Modal) Render(frame string, screenWidth, screenHeight int) string {
	if m.State == nil {
		return frame
	}

	content := m.State.Render()
	if m.error != "" {
		content += "\n" + renderModalError(m.error)
	}
	box := ModalStyle.Width(m.width()).Render(content)

	lines := splitLines(box)
	w := maxLineWidth(lines)
	x := max((screenWidth-w)/2, 0)
	y := max((screenHeight-len(lines))/2, 0)
	return OverlayAt(dimFrame(frame, screenWidth, screenHeight), box, x, y, screenWidth, screenHeight)
}

// dimFrame repaints every cell of frame in the border color so the modal
// stands out. The result is exactly width x height cells.
func dimFrame(frame string, width, height int) string {
	if width <= 0 || height <= 0 {
		return frame
	}
	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(frame).Draw(scr, area)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := scr.CellAt(x, y)
			if cell == nil {
				continue
			}
			cell = cell.Clone()
			cell.Style.Fg = ColorBorder
			cell.Style.Bg = nil
			scr.SetCell(x, y, cell)
		}
	}
	out := strings.ReplaceAll(scr.Render(), "\r\n", "\n")
	return FitBlock(out, width, height)
}

func renderModalError(s string) string {
	return FlashError.style().Render(FlashError.icon() + " " + s)
}
