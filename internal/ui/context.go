package ui

import (
	"math"
	"sync"

	"github.com/zhubert/pillbar/internal/gesture"
	"github.com/zhubert/pillbar/internal/logger"
)

// Default points per terminal cell.
const (
	DefaultPointsPerColumn = 8
	DefaultPointsPerRow    = 16
)

// ViewContext holds centralized layout calculations and the conversion
// between terminal cells and the points the gesture core works in.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int

	// Points per cell
	PointsPerColumn float64
	PointsPerRow    float64

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight:    HeaderHeight,
			FooterHeight:    FooterHeight,
			PointsPerColumn: DefaultPointsPerColumn,
			PointsPerRow:    DefaultPointsPerRow,
		}
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// NewViewContext returns a standalone context, for tests and demos that
// must not share the singleton.
func NewViewContext(pointsPerColumn, pointsPerRow float64) *ViewContext {
	v := &ViewContext{
		HeaderHeight:    HeaderHeight,
		FooterHeight:    FooterHeight,
		PointsPerColumn: DefaultPointsPerColumn,
		PointsPerRow:    DefaultPointsPerRow,
	}
	v.SetScale(pointsPerColumn, pointsPerRow)
	return v
}

// SetScale sets the points per column and row. Non-positive values keep
// the current scale.
func (v *ViewContext) SetScale(pointsPerColumn, pointsPerRow float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if pointsPerColumn > 0 {
		v.PointsPerColumn = pointsPerColumn
	}
	if pointsPerRow > 0 {
		v.PointsPerRow = pointsPerRow
	}
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
// This method is thread-safe and should be called from the main event loop
// when the terminal is resized.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Validate dimensions to prevent negative layout values
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight

	// Content area is everything between header and footer
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight

	logger.WithComponent("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"pointsPerColumn", v.PointsPerColumn,
		"pointsPerRow", v.PointsPerRow,
	)
}

// ViewportPoints returns the terminal size in points.
func (v *ViewContext) ViewportPoints() (w, h float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return float64(v.TerminalWidth) * v.PointsPerColumn, float64(v.TerminalHeight) * v.PointsPerRow
}

// ToPoints converts a cell position to points.
func (v *ViewContext) ToPoints(col, row int) gesture.Vec2 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return gesture.Vec2{
		X: float64(col) * v.PointsPerColumn,
		Y: float64(row) * v.PointsPerRow,
	}
}

// Columns converts a horizontal distance in points to whole columns.
func (v *ViewContext) Columns(points float64) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return int(math.Round(points / v.PointsPerColumn))
}

// Rows converts a vertical distance in points to whole rows.
func (v *ViewContext) Rows(points float64) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return int(math.Round(points / v.PointsPerRow))
}
